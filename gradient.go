package finitediff

import "fmt"

// Gradient approximates the gradient of f at x with central differences.
// The result has the same length as x. The stencil and step size are
// controlled by WithAccuracy and WithStep; the defaults are Second and
// DefaultStep. The cost is len(x) times the stencil length evaluations
// of f.
func Gradient(x []float64, f Func, opts ...Option) ([]float64, error) {
	dst := make([]float64, len(x))
	if err := GradientTo(dst, x, f, opts...); err != nil {
		return nil, err
	}

	return dst, nil
}

// GradientTo is like Gradient but writes the result into dst, which must
// have the same length as x.
func GradientTo(dst, x []float64, f Func, opts ...Option) error {
	cfg, err := newConfig(DefaultStep, opts)
	if err != nil {
		return err
	}

	if f == nil {
		return ErrNilFunc
	}

	if len(x) == 0 {
		return ErrEmptyPoint
	}

	if len(dst) != len(x) {
		return fmt.Errorf("%w: dst has length %d, x has length %d", ErrShapeMismatch, len(dst), len(x))
	}

	st, err := Coefficients(cfg.accuracy)
	if err != nil {
		return err
	}

	denom := st.Denominator * cfg.step

	return parallelFor(len(x), cfg.workers, x, func(xx []float64, i int) error {
		var sum float64
		for s := range st.Outer {
			xx[i] = x[i] + st.Inner[s]*cfg.step
			sum += st.Outer[s] * f(xx)
		}
		xx[i] = x[i]

		dst[i] = sum / denom

		return nil
	})
}
