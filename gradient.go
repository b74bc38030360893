package srgb

import "image/color"

// Lerp interpolates between two sRGB colors in linear light.
// t is clamped to [0, 1]; t == 0 yields a and t == 1 yields b.
//
// Blending encoded values directly darkens the midpoint; interpolating
// the decoded values gives the physically correct mix.
func Lerp(a, b color.Color, t float64) color.NRGBA {
	t = clamp01(t)
	la, lb := FromColor(a), FromColor(b)
	mix := Linear{
		R: la.R + t*(lb.R-la.R),
		G: la.G + t*(lb.G-la.G),
		B: la.B + t*(lb.B-la.B),
		A: la.A + t*(lb.A-la.A),
	}
	return color.NRGBA{
		R: Quantize(Standard.ToEncoded(mix.R)),
		G: Quantize(Standard.ToEncoded(mix.G)),
		B: Quantize(Standard.ToEncoded(mix.B)),
		A: Quantize(mix.A),
	}
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
