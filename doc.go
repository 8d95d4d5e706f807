// Package finitediff approximates derivatives of black-box functions with
// central finite differences.
//
// The package covers the common derivative shapes:
//
//   - Gradient: first derivative of a scalar function, one value per coordinate
//   - Jacobian: first derivative of a vector function, one row per output
//   - JacobianTensor: first derivative of a matrix function, two layout conventions
//   - Hessian: second derivative of a scalar function, symmetric by construction
//
// It also provides tolerance-based comparators for validating analytic
// derivatives against the approximations, and row-major reshaping helpers
// for moving between vector and matrix views of derivative data.
//
// # Usage
//
// Approximate and validate the gradient of a scalar function:
//
//	x := []float64{1, 1}
//	f := func(x []float64) float64 { return x[0]*x[0] + 2*x[1]*x[1] }
//	grad, err := finitediff.Gradient(x, f)
//
//	analytic := []float64{2 * x[0], 4 * x[1]}
//	ok := finitediff.CompareGradient(grad, analytic)  // true when they agree
//
// Select a higher accuracy order or a custom step size per call:
//
//	grad, err := finitediff.Gradient(x, f,
//		finitediff.WithAccuracy(finitediff.Sixth),
//		finitediff.WithStep(1e-6))
//
// Jacobians and Hessians are returned as gonum matrices:
//
//	jac, err := finitediff.Jacobian(x, g)    // *mat.Dense, rows follow g's outputs
//	hess, err := finitediff.Hessian(x, f)    // *mat.SymDense
//
// # Accuracy and step size
//
// The four accuracy orders [Second], [Fourth], [Sixth] and [Eighth]
// evaluate two, four, six and eight points per coordinate. Higher orders
// shrink the truncation error but amplify round-off because their stencil
// weights grow large, so they pay off for smooth functions and moderate
// steps rather than as a blanket upgrade.
//
// The step size trades truncation error (favours small steps) against
// round-off (favours large steps). The defaults, [DefaultStep] for first
// derivatives and the larger [DefaultHessianStep] for Hessians, suit
// functions whose values and arguments are of order one; rescale the step
// when they are not.
//
// # Cost
//
// Every derivative costs function evaluations, with s the stencil length
// and n = len(x):
//
//	Gradient:        n*s
//	Jacobian:        n*s + 1 (one probe to size the output)
//	JacobianTensor:  n*s + 1
//	Hessian:         n*(n+1)/2 * s*s
//
// The Hessian count grows quadratically in both n and s: at n = 100 an
// [Eighth] order Hessian costs 323200 evaluations. [WithConcurrency]
// spreads the evaluations of one call across goroutines when f is safe
// for concurrent use; the result is identical to the sequential one.
//
// # Validating analytic derivatives
//
// The comparators implement a scale-aware tolerance: elements agree when
// their absolute difference is within tol times max(|x|, |y|, 1), making
// the comparison relative for large values and absolute near zero. They
// always visit every element, and [WithReporter] exposes each mismatch
// with its position, values and differences for logging or debugging.
package finitediff
