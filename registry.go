package srgb

import (
	"fmt"
	"sort"

	"github.com/gogpu/gpucontext"
)

// Names of the built-in curves.
const (
	CurveSRGB    = "srgb"
	CurveIEC     = "srgb-iec"
	CurveRec709  = "rec709"
	CurveGamma22 = "gamma22"
)

// curves holds the named transfer functions available to commands and
// callers that select a curve by name.
var curves = gpucontext.NewRegistry[Curve](
	gpucontext.WithPriority(CurveSRGB, CurveIEC, CurveRec709, CurveGamma22),
)

func init() {
	for name, c := range map[string]Curve{
		CurveSRGB:    Standard,
		CurveIEC:     IEC,
		CurveRec709:  Rec709,
		CurveGamma22: Gamma22,
	} {
		curves.Register(name, constCurve(c))
	}
}

func constCurve(c Curve) func() Curve {
	return func() Curve { return c }
}

// RegisterCurve makes c available under name, replacing any curve
// previously registered with that name.
// RegisterCurve is safe for concurrent use.
func RegisterCurve(name string, c Curve) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}
	curves.Register(name, constCurve(c))
	Logger().Debug("srgb: curve registered", "name", name, "gamma", c.Gamma)
	return nil
}

// UnregisterCurve removes the curve registered under name, if any.
func UnregisterCurve(name string) {
	curves.Unregister(name)
	Logger().Debug("srgb: curve unregistered", "name", name)
}

// LookupCurve returns the curve registered under name.
// LookupCurve is safe for concurrent use with RegisterCurve and
// UnregisterCurve.
func LookupCurve(name string) (Curve, error) {
	// Registered curves always pass Validate, so the zero Curve that Get
	// returns for a missing name never collides with a real entry.
	c := curves.Get(name)
	if c == (Curve{}) {
		return Curve{}, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return c, nil
}

// CurveNames returns the registered curve names in sorted order.
func CurveNames() []string {
	names := curves.Available()
	sort.Strings(names)
	return names
}

// DefaultCurve returns the highest-priority registered curve, which is
// [Standard] unless it has been unregistered.
func DefaultCurve() Curve {
	return curves.Best()
}
