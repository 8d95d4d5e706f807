package finitediff

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Flatten copies m into a vector in row-major order: element (i, j) of an
// r×c matrix lands at index i*c+j. A nil matrix flattens to nil.
func Flatten(m mat.Matrix) []float64 {
	if m == nil {
		return nil
	}

	r, c := m.Dims()
	v := make([]float64, r*c)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v[i*c+j] = m.At(i, j)
		}
	}

	return v
}

// Unflatten reshapes a row-major vector into a matrix of width cols,
// inverting Flatten: element k of v lands at (k/cols, k%cols). The length
// of v must be a positive multiple of cols. The returned matrix copies v
// and shares no storage with it.
func Unflatten(v []float64, cols int) (*mat.Dense, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, cols)
	}

	if len(v) == 0 {
		return nil, ErrEmptyVector
	}

	if len(v)%cols != 0 {
		return nil, fmt.Errorf("%w: length %d, width %d", ErrIndivisibleLength, len(v), cols)
	}

	return mat.NewDense(len(v)/cols, cols, append([]float64(nil), v...)), nil
}
