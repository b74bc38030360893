package srgb

import "math"

// Quantize maps a channel value in [0, 1] to an 8-bit integer, rounding
// to nearest. Out-of-range values are clamped.
func Quantize(v float64) uint8 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// Normalize maps an 8-bit channel to [0, 1].
func Normalize(u uint8) float64 {
	return float64(u) / 255
}

// Quantize16 is the 16-bit counterpart of [Quantize].
func Quantize16(v float64) uint16 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint16(math.Round(v * 0xffff))
}

// Normalize16 maps a 16-bit channel to [0, 1].
func Normalize16(u uint16) float64 {
	return float64(u) / 0xffff
}
