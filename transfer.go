package srgb

// EncodedToLinear decodes a sequence of sRGB-encoded channel values to
// linear light using the [Standard] curve.
//
// The result is a new slice of the same length and order as vs; every
// element is converted independently and vs is not modified.
func EncodedToLinear(vs []float64) []float64 {
	return Standard.EncodedToLinear(vs)
}

// LinearToEncoded encodes a sequence of linear-light channel values to
// sRGB using the [Standard] curve.
//
// The result is a new slice of the same length and order as vs; every
// element is converted independently and vs is not modified.
func LinearToEncoded(vs []float64) []float64 {
	return Standard.LinearToEncoded(vs)
}

// EncodedToLinear applies [Curve.ToLinear] to every element of vs.
func (c Curve) EncodedToLinear(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = c.ToLinear(v)
	}
	return out
}

// LinearToEncoded applies [Curve.ToEncoded] to every element of vs.
func (c Curve) LinearToEncoded(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = c.ToEncoded(v)
	}
	return out
}
