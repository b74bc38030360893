package srgb

import "golang.org/x/image/draw"

// ImageOption configures image conversion and resampling.
//
// Example:
//
//	dst, err := srgb.Resize(src, 320, 240,
//	    srgb.WithCurve(srgb.IEC),
//	    srgb.WithInterpolator(draw.BiLinear))
type ImageOption func(*imageOptions)

// imageOptions holds optional configuration for image operations.
type imageOptions struct {
	curve        Curve
	interpolator draw.Interpolator
}

// defaultImageOptions returns the default image options.
func defaultImageOptions() imageOptions {
	return imageOptions{
		curve:        Standard,
		interpolator: draw.CatmullRom,
	}
}

func applyImageOptions(opts []ImageOption) imageOptions {
	o := defaultImageOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCurve selects the transfer function used to decode and encode
// pixels. The default is [Standard].
func WithCurve(c Curve) ImageOption {
	return func(o *imageOptions) {
		o.curve = c
	}
}

// WithInterpolator selects the resampling kernel used by [Resize].
// The default is draw.CatmullRom. A nil interpolator is ignored.
func WithInterpolator(i draw.Interpolator) ImageOption {
	return func(o *imageOptions) {
		if i != nil {
			o.interpolator = i
		}
	}
}
