package finitediff

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Default step sizes and the default comparison tolerance. Gradients and
// Jacobians use a smaller step than Hessians: the Hessian divides by the
// squared step, so shrinking it below 1e-5 lets round-off dominate.
const (
	// DefaultStep is the perturbation step for Gradient, GradientTo,
	// Jacobian and JacobianTensor.
	DefaultStep = 1e-8

	// DefaultHessianStep is the perturbation step for Hessian.
	DefaultHessianStep = 1e-5

	// DefaultTolerance is the relative tolerance used by CompareGradient,
	// CompareJacobian and CompareHessian.
	DefaultTolerance = 1e-4
)

// Common errors returned by the differentiation functions.
var (
	ErrUnknownAccuracy   = errors.New("finitediff: unknown accuracy order")
	ErrInvalidStep       = errors.New("finitediff: step size must be positive")
	ErrNilFunc           = errors.New("finitediff: function must not be nil")
	ErrEmptyPoint        = errors.New("finitediff: evaluation point must not be empty")
	ErrEmptyResult       = errors.New("finitediff: function returned an empty result")
	ErrEmptyVector       = errors.New("finitediff: vector must not be empty")
	ErrShapeMismatch     = errors.New("finitediff: shape mismatch")
	ErrInvalidOrder      = errors.New("finitediff: tensor order must not be negative")
	ErrInvalidWidth      = errors.New("finitediff: width must be positive")
	ErrIndivisibleLength = errors.New("finitediff: vector length not divisible by width")
)

// Func is a scalar-valued function of a vector argument. Implementations
// must not retain or mutate x: the differentiation routines reuse the
// backing slice between evaluations.
type Func func(x []float64) float64

// VectorFunc is a vector-valued function of a vector argument. The returned
// slice must have the same length on every call; implementations must not
// retain or mutate x.
type VectorFunc func(x []float64) []float64

// MatrixFunc is a matrix-valued function of a vector argument, used by
// JacobianTensor. The returned matrix must have the same dimensions on
// every call; implementations must not retain or mutate x.
type MatrixFunc func(x []float64) *mat.Dense
