package finitediff

import "gonum.org/v1/gonum/mat"

// Hessian approximates the n×n Hessian of f at x, n = len(x). The result
// is symmetric by construction: every pair (i, j) with i <= j is evaluated
// once and stored symmetrically, never averaged. The default step is
// DefaultHessianStep, larger than the gradient default because the
// weighted sum is divided by the squared step. The cost is n(n+1)/2 times
// the squared stencil length evaluations of f.
func Hessian(x []float64, f Func, opts ...Option) (*mat.SymDense, error) {
	cfg, err := newConfig(DefaultHessianStep, opts)
	if err != nil {
		return nil, err
	}

	if f == nil {
		return nil, ErrNilFunc
	}

	if len(x) == 0 {
		return nil, ErrEmptyPoint
	}

	st, err := Coefficients(cfg.accuracy)
	if err != nil {
		return nil, err
	}

	n := len(x)
	hess := mat.NewSymDense(n, nil)

	denom := st.Denominator * cfg.step
	denom *= denom

	err = parallelFor(n*(n+1)/2, cfg.workers, x, func(xx []float64, pair int) error {
		i, j := pairAt(pair, n)

		// On the diagonal both perturbations land on the same coordinate
		// and compose, which is why they accumulate instead of assigning.
		var sum float64
		for ci := range st.Outer {
			for cj := range st.Outer {
				xx[i] += st.Inner[ci] * cfg.step
				xx[j] += st.Inner[cj] * cfg.step

				sum += st.Outer[ci] * st.Outer[cj] * f(xx)

				xx[j] = x[j]
				xx[i] = x[i]
			}
		}

		hess.SetSym(i, j, sum/denom)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return hess, nil
}

// pairAt returns the pair-th element (i, j), i <= j, of the upper triangle
// of an n×n matrix enumerated row by row.
func pairAt(pair, n int) (i, j int) {
	for pair >= n-i {
		pair -= n - i
		i++
	}

	return i, i + pair
}
