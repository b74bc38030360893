package srgb

// Lookup tables give O(1) 8-bit conversions for per-pixel work, replacing
// a math.Pow call per channel with an array index.
//
// References:
//   - GPU Gems 3, Chapter 24: https://developer.nvidia.com/gpugems/gpugems3/part-iv-image-effects/chapter-24-importance-being-linear

// decodeLUT maps an sRGB byte to linear float32 in [0, 1].
var decodeLUT [256]float32

// encodeLUT maps linear float32 to an sRGB byte.
// 4096 entries (12-bit precision) are enough for 8-bit output.
var encodeLUT [4096]uint8

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = float32(Standard.ToLinear(float64(i) / 255))
	}
	for i := range encodeLUT {
		encodeLUT[i] = Quantize(Standard.ToEncoded(float64(i) / 4095))
	}
}

// DecodeByte converts an sRGB byte to linear light using a lookup table.
//
//	DecodeByte(128) // ~0.2159, not 0.5
func DecodeByte(s uint8) float32 {
	return decodeLUT[s]
}

// EncodeByte converts linear light to an sRGB byte using a lookup table.
// The input is clamped to [0, 1].
//
//	EncodeByte(0.5) // 188, not 128
func EncodeByte(l float32) uint8 {
	if !(l > 0) {
		return 0
	}
	if l > 1 {
		l = 1
	}
	return encodeLUT[int(l*4095+0.5)]
}

// DecodeByteSlow is the math.Pow reference for [DecodeByte].
func DecodeByteSlow(s uint8) float32 {
	return float32(Standard.ToLinear(Normalize(s)))
}

// EncodeByteSlow is the math.Pow reference for [EncodeByte].
func EncodeByteSlow(l float32) uint8 {
	return Quantize(Standard.ToEncoded(float64(l)))
}
