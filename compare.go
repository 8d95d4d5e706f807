package finitediff

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mismatch describes one element pair that failed a tolerance comparison.
// Row and Col locate the element; Col is always 0 for vector comparisons.
type Mismatch struct {
	// Label identifies the comparison, see WithLabel.
	Label string
	// Row and Col locate the mismatching element.
	Row, Col int
	// X and Y are the two compared values.
	X, Y float64
	// AbsDiff is |X-Y| and RelDiff is |X-Y| divided by the comparison
	// scale max(|X|, |Y|, 1).
	AbsDiff, RelDiff float64
	// Tol is the tolerance the comparison used.
	Tol float64
}

// CompareOption configures a comparison.
type CompareOption func(*compareConfig)

type compareConfig struct {
	tol      float64
	label    string
	reporter func(Mismatch)
}

func newCompareConfig(label string, opts []CompareOption) compareConfig {
	cfg := compareConfig{tol: DefaultTolerance, label: label}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithTolerance sets the relative tolerance of a comparison. Values that
// are not positive are ignored and leave DefaultTolerance in effect.
func WithTolerance(tol float64) CompareOption {
	return func(c *compareConfig) {
		if tol > 0 && !math.IsNaN(tol) {
			c.tol = tol
		}
	}
}

// WithLabel sets the label attached to reported mismatches, so callers
// comparing several derivatives can tell the reports apart. The defaults
// are "gradient", "jacobian" and "hessian", matching the comparison used.
func WithLabel(label string) CompareOption {
	return func(c *compareConfig) {
		c.label = label
	}
}

// WithReporter registers a callback invoked once per mismatching element.
// Comparisons always visit every element rather than stopping at the first
// failure, so the reporter sees the complete set of mismatches.
func WithReporter(fn func(Mismatch)) CompareOption {
	return func(c *compareConfig) {
		c.reporter = fn
	}
}

// check applies the tolerance rule to one element pair and reports the
// mismatch if the pair disagrees.
func (c *compareConfig) check(row, col int, x, y float64) bool {
	scale := math.Max(math.Max(math.Abs(x), math.Abs(y)), 1)
	diff := math.Abs(x - y)

	if diff <= c.tol*scale {
		return true
	}

	if c.reporter != nil {
		c.reporter(Mismatch{
			Label:   c.label,
			Row:     row,
			Col:     col,
			X:       x,
			Y:       y,
			AbsDiff: diff,
			RelDiff: diff / scale,
			Tol:     c.tol,
		})
	}

	return false
}

// CompareGradient reports whether two gradients agree elementwise within a
// relative tolerance. Elements agree when
//
//	|x[i]-y[i]| <= tol * max(|x[i]|, |y[i]|, 1)
//
// so large values are compared relatively and values near zero against an
// absolute threshold. Vectors of different lengths never agree, and a NaN
// element never agrees with anything.
func CompareGradient(x, y []float64, opts ...CompareOption) bool {
	cfg := newCompareConfig("gradient", opts)

	if len(x) != len(y) {
		return false
	}

	ok := true
	for i := range x {
		if !cfg.check(i, 0, x[i], y[i]) {
			ok = false
		}
	}

	return ok
}

// CompareJacobian reports whether two matrices agree elementwise within a
// relative tolerance, applying the CompareGradient rule per element.
// Matrices with different dimensions never agree, and nil never agrees
// with anything.
func CompareJacobian(x, y mat.Matrix, opts ...CompareOption) bool {
	if x == nil || y == nil {
		return false
	}

	xr, xc := x.Dims()
	yr, yc := y.Dims()

	if xr != yr || xc != yc {
		return false
	}

	cfg := newCompareConfig("jacobian", opts)

	ok := true
	for r := 0; r < xr; r++ {
		for c := 0; c < xc; c++ {
			if !cfg.check(r, c, x.At(r, c), y.At(r, c)) {
				ok = false
			}
		}
	}

	return ok
}

// CompareHessian reports whether two Hessians agree within a relative
// tolerance. It is CompareJacobian under the "hessian" label.
func CompareHessian(x, y mat.Matrix, opts ...CompareOption) bool {
	return CompareJacobian(x, y, append([]CompareOption{WithLabel("hessian")}, opts...)...)
}
