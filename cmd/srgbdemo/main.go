// Command srgbdemo shows the sRGB transfer functions at work on an
// 8-bit color triple: the triple is treated as linear light, encoded,
// decoded again, and every intermediate step is printed.
//
// Usage:
//
//	srgbdemo [-rgb 242,204,153] [-curve srgb] [-sweep 0:255] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/srgb"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("srgbdemo: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("srgbdemo", flag.ContinueOnError)
	var (
		rgb     = fs.String("rgb", "242,204,153", "comma-separated 8-bit channel values")
		curve   = fs.String("curve", srgb.CurveSRGB, "transfer curve ("+strings.Join(srgb.CurveNames(), ", ")+")")
		sweep   = fs.String("sweep", "", "print round-trip error for 8-bit values lo:hi")
		verbose = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
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
	channels, err := parseChannels(*rgb)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	printDemo(p, stdout, c, channels)

	if *sweep != "" {
		lo, hi, err := parseRange(*sweep)
		if err != nil {
			return err
		}
		printSweep(p, stdout, c, lo, hi)
	}
	return nil
}

// printDemo walks one triple through encode and decode.
func printDemo(p *message.Printer, w io.Writer, c srgb.Curve, channels []uint8) {
	normalized := make([]float64, len(channels))
	for i, v := range channels {
		normalized[i] = srgb.Normalize(v)
	}
	encoded := c.LinearToEncoded(normalized)
	decoded := c.EncodedToLinear(encoded)

	p.Fprintf(w, "input:      %s\n", formatBytes(p, channels))
	p.Fprintf(w, "normalized: %s\n", formatFloats(p, normalized))
	p.Fprintf(w, "encoded:    %s\n", formatFloats(p, encoded))
	p.Fprintf(w, "encoded 8:  %s\n", formatBytes(p, quantizeAll(encoded)))
	p.Fprintf(w, "decoded:    %s\n", formatFloats(p, decoded))
	p.Fprintf(w, "decoded 8:  %s\n", formatBytes(p, quantizeAll(decoded)))
}

// printSweep prints the round-trip error, in 8-bit units, for every
// value in [lo, hi].
func printSweep(p *message.Printer, w io.Writer, c srgb.Curve, lo, hi int) {
	for i := lo; i <= hi; i++ {
		v := c.ToLinear(c.ToEncoded(float64(i)/255)) * 255
		p.Fprintf(w, "%3d %.10f %.3e\n", i, v, float64(i)-v)
	}
}

func quantizeAll(vs []float64) []uint8 {
	out := make([]uint8, len(vs))
	for i, v := range vs {
		out[i] = srgb.Quantize(v)
	}
	return out
}

func formatFloats(p *message.Printer, vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = p.Sprintf("%.8f", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatBytes(p *message.Printer, vs []uint8) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = p.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// parseChannels parses "r,g,b,..." into 8-bit channel values.
func parseChannels(s string) ([]uint8, error) {
	fields := strings.Split(s, ",")
	out := make([]uint8, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid channel %q: %w", f, err)
		}
		out = append(out, uint8(v))
	}
	return out, nil
}

// parseRange parses "lo:hi" with 0 <= lo <= hi <= 255.
func parseRange(s string) (lo, hi int, err error) {
	los, his, ok := strings.Cut(s, ":")
	if !ok {
		his = los
	}
	if lo, err = strconv.Atoi(strings.TrimSpace(los)); err != nil {
		return 0, 0, fmt.Errorf("invalid sweep %q: %w", s, err)
	}
	if hi, err = strconv.Atoi(strings.TrimSpace(his)); err != nil {
		return 0, 0, fmt.Errorf("invalid sweep %q: %w", s, err)
	}
	if lo < 0 || hi > 255 || lo > hi {
		return 0, 0, fmt.Errorf("invalid sweep %q: want 0 <= lo <= hi <= 255", s)
	}
	return lo, hi, nil
}
