package srgb

// ColorSpace identifies how the RGB channels of a value are encoded.
// Alpha is always linear.
type ColorSpace uint8

const (
	// SpaceSRGB holds gamma-encoded channels.
	SpaceSRGB ColorSpace = iota
	// SpaceLinear holds linear-light channels.
	SpaceLinear
)

func (s ColorSpace) String() string {
	switch s {
	case SpaceSRGB:
		return "sRGB"
	case SpaceLinear:
		return "linear"
	default:
		return "unknown"
	}
}
