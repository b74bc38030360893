package srgb

import (
	"image/color"

	"github.com/gogpu/gputypes"
)

// TextureFormatFor returns the 8-bit RGBA texture format that stores
// channels in the given color space. sRGB formats make the GPU decode on
// sample and encode on write, so shaders always see linear values.
func TextureFormatFor(space ColorSpace, bgra bool) gputypes.TextureFormat {
	switch {
	case space == SpaceSRGB && bgra:
		return gputypes.TextureFormatBGRA8UnormSrgb
	case space == SpaceSRGB:
		return gputypes.TextureFormatRGBA8UnormSrgb
	case bgra:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}

// SpaceOf reports the color space a texture format stores its channels in.
func SpaceOf(f gputypes.TextureFormat) ColorSpace {
	if f.IsSrgb() {
		return SpaceSRGB
	}
	return SpaceLinear
}

// ClearColor converts an sRGB color to the linear value expected by
// render-pass clear operations. Clear values are always given in linear
// light, whatever the attachment format.
func ClearColor(c color.Color) gputypes.Color {
	l := FromColor(c)
	return gputypes.NewColor(l.R, l.G, l.B, l.A)
}
