package finitediff

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Jacobian approximates the m×n Jacobian of f at x, where n = len(x) and
// m is the length of f's result. Row r holds the partial derivatives of
// output r with respect to every coordinate of x. The output dimension is
// discovered with one extra evaluation of f at x, so the cost is
// n times the stencil length plus one evaluations.
func Jacobian(x []float64, f VectorFunc, opts ...Option) (*mat.Dense, error) {
	cfg, err := newConfig(DefaultStep, opts)
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

	m := len(f(x))
	if m == 0 {
		return nil, ErrEmptyResult
	}

	jac := mat.NewDense(m, len(x), nil)
	denom := st.Denominator * cfg.step

	err = parallelFor(len(x), cfg.workers, x, func(xx []float64, i int) error {
		col := make([]float64, m)

		for s := range st.Outer {
			xx[i] = x[i] + st.Inner[s]*cfg.step

			fx := f(xx)
			if len(fx) != m {
				return fmt.Errorf("%w: f returned %d values, expected %d", ErrShapeMismatch, len(fx), m)
			}

			floats.AddScaled(col, st.Outer[s], fx)
		}
		xx[i] = x[i]

		floats.Scale(1/denom, col)
		jac.SetCol(i, col)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return jac, nil
}

// JacobianTensor approximates the derivative of a matrix-valued function
// with respect to x, laid out in two dimensions. order is the tensor order
// of the derivative and selects the layout through its parity. With p×q
// the dimensions of f's result and n = len(x):
//
//   - even order: the derivative with respect to x[k] occupies the column
//     block [k*q, (k+1)*q) of a p×(q·n) result;
//   - odd order: the derivative with respect to x[k] is flattened
//     row-major (see Flatten) into column k of a (p·q)×n result.
//
// The dimensions of f's result are discovered with one extra evaluation
// at x.
func JacobianTensor(order int, x []float64, f MatrixFunc, opts ...Option) (*mat.Dense, error) {
	cfg, err := newConfig(DefaultStep, opts)
	if err != nil {
		return nil, err
	}

	if order < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
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

	var p, q int
	if probe := f(x); probe != nil {
		p, q = probe.Dims()
	}

	if p == 0 || q == 0 {
		return nil, ErrEmptyResult
	}

	n := len(x)
	even := order%2 == 0

	var jac *mat.Dense
	if even {
		jac = mat.NewDense(p, q*n, nil)
	} else {
		jac = mat.NewDense(p*q, n, nil)
	}

	denom := st.Denominator * cfg.step

	err = parallelFor(n, cfg.workers, x, func(xx []float64, k int) error {
		acc := make([]float64, p*q)

		for s := range st.Outer {
			xx[k] = x[k] + st.Inner[s]*cfg.step

			fx := f(xx)
			if fx == nil {
				return ErrEmptyResult
			}

			if r, c := fx.Dims(); r != p || c != q {
				return fmt.Errorf("%w: f returned a %d×%d matrix, expected %d×%d", ErrShapeMismatch, r, c, p, q)
			}

			for r := 0; r < p; r++ {
				floats.AddScaled(acc[r*q:(r+1)*q], st.Outer[s], fx.RawRowView(r))
			}
		}
		xx[k] = x[k]

		floats.Scale(1/denom, acc)

		if even {
			for r := 0; r < p; r++ {
				for c := 0; c < q; c++ {
					jac.Set(r, k*q+c, acc[r*q+c])
				}
			}
		} else {
			jac.SetCol(k, acc)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return jac, nil
}
