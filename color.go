package srgb

import "image/color"

// RGBA8 is an 8-bit color whose RGB channels hold linear light.
// Alpha is linear and not premultiplied.
type RGBA8 struct {
	R, G, B, A uint8
}

// SRGBA8 is an 8-bit color whose RGB channels are sRGB-encoded.
// Alpha is linear and not premultiplied.
type SRGBA8 struct {
	R, G, B, A uint8
}

// ToSRGB encodes the RGB channels with the [Standard] curve and rounds
// back to 8 bits. Alpha is copied unchanged.
func (c RGBA8) ToSRGB() SRGBA8 {
	return SRGBA8{
		R: encode8(c.R),
		G: encode8(c.G),
		B: encode8(c.B),
		A: c.A,
	}
}

// RGBA implements color.Color. The channels are encoded at 16-bit
// precision before premultiplication.
func (c RGBA8) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: Quantize16(Standard.ToEncoded(Normalize(c.R))),
		G: Quantize16(Standard.ToEncoded(Normalize(c.G))),
		B: Quantize16(Standard.ToEncoded(Normalize(c.B))),
		A: uint16(c.A) * 0x101,
	}.RGBA()
}

// ToLinear decodes the RGB channels with the [Standard] curve and rounds
// back to 8 bits. Alpha is copied unchanged.
func (c SRGBA8) ToLinear() RGBA8 {
	return RGBA8{
		R: decode8(c.R),
		G: decode8(c.G),
		B: decode8(c.B),
		A: c.A,
	}
}

// RGBA implements color.Color.
func (c SRGBA8) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func encode8(v uint8) uint8 { return Quantize(Standard.ToEncoded(Normalize(v))) }
func decode8(v uint8) uint8 { return Quantize(Standard.ToLinear(Normalize(v))) }

// Linear is a float64 color with linear-light RGB channels and
// non-premultiplied alpha. Channels are nominally in [0, 1].
type Linear struct {
	R, G, B, A float64
}

// RGBA implements color.Color by encoding through the [Standard] curve.
// Out-of-range channels are clamped.
func (c Linear) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: Quantize16(Standard.ToEncoded(c.R)),
		G: Quantize16(Standard.ToEncoded(c.G)),
		B: Quantize16(Standard.ToEncoded(c.B)),
		A: Quantize16(c.A),
	}.RGBA()
}

// ToRGBA8 rounds the linear channels to 8 bits without encoding them.
func (c Linear) ToRGBA8() RGBA8 {
	return RGBA8{R: Quantize(c.R), G: Quantize(c.G), B: Quantize(c.B), A: Quantize(c.A)}
}

// LinearModel converts any color.Color to [Linear].
var LinearModel = color.ModelFunc(linearModel)

func linearModel(c color.Color) color.Color {
	return FromColor(c)
}

// FromColor converts a standard color.Color, assumed to be sRGB-encoded,
// to [Linear].
//
// Non-premultiplied types are decoded directly. Other colors are first
// un-premultiplied at 16 bits, so their RGB loses precision as alpha
// approaches zero.
func FromColor(c color.Color) Linear {
	switch c := c.(type) {
	case Linear:
		return c
	case RGBA8:
		return Linear{R: Normalize(c.R), G: Normalize(c.G), B: Normalize(c.B), A: Normalize(c.A)}
	case SRGBA8:
		return fromNRGBA(color.NRGBA(c))
	case color.NRGBA:
		return fromNRGBA(c)
	case color.NRGBA64:
		return fromNRGBA64(c)
	}
	return fromNRGBA64(color.NRGBA64Model.Convert(c).(color.NRGBA64))
}

func fromNRGBA(c color.NRGBA) Linear {
	return Linear{
		R: Standard.ToLinear(Normalize(c.R)),
		G: Standard.ToLinear(Normalize(c.G)),
		B: Standard.ToLinear(Normalize(c.B)),
		A: Normalize(c.A),
	}
}

func fromNRGBA64(n color.NRGBA64) Linear {
	return Linear{
		R: Standard.ToLinear(Normalize16(n.R)),
		G: Standard.ToLinear(Normalize16(n.G)),
		B: Standard.ToLinear(Normalize16(n.B)),
		A: Normalize16(n.A),
	}
}
