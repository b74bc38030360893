// Package srgb converts color channel values between the sRGB
// (gamma-encoded) and linear-light representations.
//
// # Overview
//
// Images and displays store sRGB-encoded values, but blending, filtering
// and lighting are only physically correct in linear light. The transfer
// functions in this package move values between the two:
//
//	lin := srgb.EncodedToLinear([]float64{0.5, 0.25, 1}) // decode
//	enc := srgb.LinearToEncoded(lin)                     // encode
//
// Both functions are pure and elementwise: the result has the length and
// order of the input and each channel is converted independently. Values
// outside [0, 1] are accepted and never clamped.
//
// # Curves
//
// The package-level functions use [Standard], the sRGB curve with
// high-precision constants whose linear and power segments meet exactly.
// [IEC], [Rec709] and [Gamma22] cover the rounded published sRGB
// constants, BT.709 and a pure power law. Curves can also be selected by
// name through [LookupCurve].
//
// # 8-bit Values
//
// [Quantize] and [Normalize] map between [0, 1] and bytes. [DecodeByte]
// and [EncodeByte] use lookup tables for per-pixel work. [RGBA8],
// [SRGBA8] and [Linear] are color types that keep track of which space
// their channels are in; alpha is always linear.
//
// # Images and GPUs
//
// [Resize] scales images in linear light. [TextureFormatFor] and
// [ClearColor] bridge to gputypes, and the shader sub-package generates
// WGSL compute kernels for the same curves.
//
// # Logging
//
// The package is silent by default; see [SetLogger].
package srgb

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
