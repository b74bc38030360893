package srgb

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func floatNear(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestEncodedToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", DecodeThreshold, DecodeThreshold / 12.92},
		{"just above threshold", 0.0405, math.Pow((0.0405+0.055)/1.055, 2.4)},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
		{"negative stays linear", -0.5, -0.5 / 12.92},
		{"above one not clamped", 1.5, math.Pow((1.5+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodedToLinear([]float64{tt.input})
			if len(got) != 1 || !floatNear(got[0], tt.want, 1e-12) {
				t.Errorf("EncodedToLinear([%v]) = %v, want [%v]", tt.input, got, tt.want)
			}
		})
	}
}

func TestLinearToEncodedEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", EncodeThreshold, EncodeThreshold * 12.92},
		{"just above threshold", 0.0032, 1.055*math.Pow(0.0032, 1/2.4) - 0.055},
		{"mid gray linear", 0.21404, 1.055*math.Pow(0.21404, 1/2.4) - 0.055},
		{"negative stays linear", -0.25, -0.25 * 12.92},
		{"above one not clamped", 2, 1.055*math.Pow(2, 1/2.4) - 0.055},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToEncoded([]float64{tt.input})
			if len(got) != 1 || !floatNear(got[0], tt.want, 1e-12) {
				t.Errorf("LinearToEncoded([%v]) = %v, want [%v]", tt.input, got, tt.want)
			}
		})
	}
}

func TestFixedPoints(t *testing.T) {
	if got := EncodedToLinear([]float64{0}); got[0] != 0 {
		t.Errorf("EncodedToLinear([0]) = %v, want exactly [0]", got)
	}
	if got := LinearToEncoded([]float64{0}); got[0] != 0 {
		t.Errorf("LinearToEncoded([0]) = %v, want exactly [0]", got)
	}
	if got := EncodedToLinear([]float64{1}); !floatNear(got[0], 1, 1e-12) {
		t.Errorf("EncodedToLinear([1]) = %v, want ~[1]", got)
	}
	if got := LinearToEncoded([]float64{1}); !floatNear(got[0], 1, 1e-12) {
		t.Errorf("LinearToEncoded([1]) = %v, want ~[1]", got)
	}
}

// TestRoundTrip checks decode(encode(v)) and encode(decode(v)) on a fine
// grid over [0, 1].
func TestRoundTrip(t *testing.T) {
	const n = 10000
	const eps = 1e-9

	for i := 0; i <= n; i++ {
		v := float64(i) / n
		if got := EncodedToLinear(LinearToEncoded([]float64{v}))[0]; !floatNear(got, v, eps) {
			t.Fatalf("EncodedToLinear(LinearToEncoded(%v)) = %v", v, got)
		}
		if got := LinearToEncoded(EncodedToLinear([]float64{v}))[0]; !floatNear(got, v, eps) {
			t.Fatalf("LinearToEncoded(EncodedToLinear(%v)) = %v", v, got)
		}
	}
}

// TestContinuity checks that neither function jumps at its branch point.
func TestContinuity(t *testing.T) {
	const eps = 1e-12

	for _, c := range []struct {
		name      string
		f         func([]float64) []float64
		threshold float64
	}{
		{"decode", EncodedToLinear, DecodeThreshold},
		{"encode", LinearToEncoded, EncodeThreshold},
	} {
		t.Run(c.name, func(t *testing.T) {
			got := c.f([]float64{c.threshold - eps, c.threshold, c.threshold + eps})
			if d := math.Abs(got[2] - got[0]); d > 1e-9 {
				t.Errorf("jump of %g across threshold %v", d, c.threshold)
			}
		})
	}
}

func TestThresholdsMeet(t *testing.T) {
	if !floatNear(EncodeThreshold*Slope, DecodeThreshold, 1e-15) {
		t.Errorf("EncodeThreshold*Slope = %v, want %v", EncodeThreshold*Slope, DecodeThreshold)
	}
}

// TestElementwise checks that converting a sequence equals converting each
// element on its own.
func TestElementwise(t *testing.T) {
	in := []float64{0, 0.001, EncodeThreshold, DecodeThreshold, 0.2, 0.5, 0.73, 1, -0.1, 1.2}

	for _, c := range []struct {
		name string
		f    func([]float64) []float64
	}{
		{"EncodedToLinear", EncodedToLinear},
		{"LinearToEncoded", LinearToEncoded},
	} {
		t.Run(c.name, func(t *testing.T) {
			got := c.f(in)
			want := make([]float64, 0, len(in))
			for _, v := range in {
				want = append(want, c.f([]float64{v})...)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", c.name, diff)
			}
		})
	}
}

func TestInputNotModified(t *testing.T) {
	in := []float64{0.1, 0.5, 0.9}
	orig := append([]float64(nil), in...)

	EncodedToLinear(in)
	LinearToEncoded(in)

	if diff := cmp.Diff(orig, in); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, in := range [][]float64{nil, {}} {
		if got := EncodedToLinear(in); got == nil || len(got) != 0 {
			t.Errorf("EncodedToLinear(%#v) = %#v, want empty slice", in, got)
		}
		if got := LinearToEncoded(in); got == nil || len(got) != 0 {
			t.Errorf("LinearToEncoded(%#v) = %#v, want empty slice", in, got)
		}
	}
}

// TestColorTripleRoundTrip treats an 8-bit triple as linear light, encodes
// it, decodes it again and rounds back to 8 bits.
func TestColorTripleRoundTrip(t *testing.T) {
	triple := []uint8{242, 204, 153}
	in := make([]float64, len(triple))
	for i, v := range triple {
		in[i] = float64(v) / 255
	}

	encoded := LinearToEncoded(in)
	encoded8 := make([]uint8, len(encoded))
	for i, v := range encoded {
		encoded8[i] = Quantize(v)
	}
	if diff := cmp.Diff([]uint8{249, 231, 203}, encoded8); diff != "" {
		t.Errorf("encoded triple mismatch (-want +got):\n%s", diff)
	}

	decoded := EncodedToLinear(encoded)
	if diff := cmp.Diff(in, decoded, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}
	got := make([]uint8, len(decoded))
	for i, v := range decoded {
		got[i] = Quantize(v)
	}
	if diff := cmp.Diff(triple, got); diff != "" {
		t.Errorf("8-bit round trip mismatch (-want +got):\n%s", diff)
	}
}
