// Command srgbresize scales an image in linear light and writes a PNG.
//
// Usage:
//
//	srgbresize -in photo.jpg -out thumb.png -width 320 [-height 240] [-curve srgb] [-v]
//
// When only one of -width and -height is given, the other is derived
// from the source aspect ratio.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"log"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/srgb"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("srgbresize: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("srgbresize", flag.ContinueOnError)
	var (
		in      = fs.String("in", "", "input image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
		out     = fs.String("out", "out.png", "output PNG file")
		width   = fs.Int("width", 0, "output width")
		height  = fs.Int("height", 0, "output height")
		curve   = fs.String("curve", srgb.CurveSRGB, "transfer curve")
		kernel  = fs.String("kernel", "catmullrom", "resampling kernel (nearest, bilinear, catmullrom)")
		verbose = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("-in is required")
	}

	if *verbose {
		srgb.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c, err := srgb.LookupCurve(*curve)
	if err != nil {
		return err
	}
	interp, err := interpolator(*kernel)
	if err != nil {
		return err
	}

	src, err := decodeFile(*in)
	if err != nil {
		return err
	}
	w, h := targetSize(src.Bounds().Size(), *width, *height)

	dst, err := srgb.Resize(src, w, h, srgb.WithCurve(c), srgb.WithInterpolator(interp))
	if err != nil {
		return err
	}
	if err := encodeFile(*out, dst); err != nil {
		return err
	}

	log.Printf("Resized %s to %s (%dx%d)\n", *in, *out, w, h)
	return nil
}

func interpolator(name string) (draw.Interpolator, error) {
	switch name {
	case "nearest":
		return draw.NearestNeighbor, nil
	case "bilinear":
		return draw.BiLinear, nil
	case "catmullrom":
		return draw.CatmullRom, nil
	default:
		return nil, fmt.Errorf("unknown kernel %q", name)
	}
}

// targetSize fills in a zero dimension from the source aspect ratio.
// Both zero keeps the source size.
func targetSize(src image.Point, width, height int) (int, int) {
	switch {
	case width == 0 && height == 0:
		return src.X, src.Y
	case width == 0 && src.Y > 0:
		return max(1, src.X*height/src.Y), height
	case height == 0 && src.X > 0:
		return width, max(1, src.Y*width/src.X)
	}
	return width, height
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	srgb.Logger().Debug("decoded input", "path", path, "format", format)
	return img, nil
}

func encodeFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
