package finitediff

import "fmt"

// Accuracy selects the truncation-error order of the central-difference
// stencil. Higher orders evaluate more points per coordinate in exchange
// for a smaller truncation error.
type Accuracy int

// Supported accuracy orders.
const (
	// Second is the classic two-point central difference with O(eps^2)
	// truncation error. It is the default.
	Second Accuracy = iota
	// Fourth uses four points per coordinate, O(eps^4).
	Fourth
	// Sixth uses six points per coordinate, O(eps^6).
	Sixth
	// Eighth uses eight points per coordinate, O(eps^8).
	Eighth
)

// String returns the name of the accuracy order.
func (a Accuracy) String() string {
	switch a {
	case Second:
		return "second"
	case Fourth:
		return "fourth"
	case Sixth:
		return "sixth"
	case Eighth:
		return "eighth"
	default:
		return fmt.Sprintf("accuracy(%d)", int(a))
	}
}

// Stencil holds the weights of a central-difference stencil. A stencil of
// length k approximates a first derivative as
//
//	f'(x) ≈ sum_s Outer[s]*f(x+Inner[s]*eps) / (Denominator*eps)
//
// Outer and Inner always have equal length and contain no zero offset:
// central differences never evaluate the function at the point itself.
type Stencil struct {
	// Outer holds the weights applied to the sampled function values.
	Outer []float64
	// Inner holds the sample offsets in units of the step size.
	Inner []float64
	// Denominator is the common divisor of the weighted sum, to be
	// multiplied by the step size.
	Denominator float64
}

// stencils is indexed by Accuracy. Order k uses 2*(k+1) points.
var stencils = [...]Stencil{
	Second: {
		Outer:       []float64{1, -1},
		Inner:       []float64{1, -1},
		Denominator: 2,
	},
	Fourth: {
		Outer:       []float64{1, -8, 8, -1},
		Inner:       []float64{-2, -1, 1, 2},
		Denominator: 12,
	},
	Sixth: {
		Outer:       []float64{-1, 9, -45, 45, -9, 1},
		Inner:       []float64{-3, -2, -1, 1, 2, 3},
		Denominator: 60,
	},
	Eighth: {
		Outer:       []float64{3, -32, 168, -672, 672, -168, 32, -3},
		Inner:       []float64{-4, -3, -2, -1, 1, 2, 3, 4},
		Denominator: 840,
	},
}

// Coefficients returns the stencil for the given accuracy order. The
// returned slices are copies; mutating them does not affect later calls.
// It returns ErrUnknownAccuracy for orders outside Second..Eighth.
func Coefficients(order Accuracy) (Stencil, error) {
	if order < Second || int(order) >= len(stencils) {
		return Stencil{}, fmt.Errorf("%w: %v", ErrUnknownAccuracy, order)
	}

	src := stencils[order]

	return Stencil{
		Outer:       append([]float64(nil), src.Outer...),
		Inner:       append([]float64(nil), src.Inner...),
		Denominator: src.Denominator,
	}, nil
}
