package finitediff

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCompareGradient(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want bool
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, true},
		{"within tolerance", []float64{1, 2}, []float64{1.00005, 2}, true},
		{"beyond tolerance", []float64{1, 2}, []float64{1.001, 2}, false},
		// Large values compare relatively: 0.05 apart but only 5e-5 of the
		// magnitude.
		{"relative for large values", []float64{1000}, []float64{1000.05}, true},
		// Small values compare against an absolute floor of tol*1.
		{"absolute near zero", []float64{1e-9}, []float64{9e-5}, true},
		{"absolute near zero fails", []float64{1e-9}, []float64{2e-4}, false},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, false},
		{"both empty", nil, []float64{}, true},
		{"nan never agrees", []float64{math.NaN()}, []float64{math.NaN()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareGradient(tt.x, tt.y); got != tt.want {
				t.Errorf("CompareGradient(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCompareGradientTolerance(t *testing.T) {
	x := []float64{1}
	y := []float64{1.01}

	if CompareGradient(x, y) {
		t.Error("1% difference should fail the default tolerance")
	}
	if !CompareGradient(x, y, WithTolerance(0.1)) {
		t.Error("1% difference should pass a 10% tolerance")
	}
	if CompareGradient(x, y, WithTolerance(1e-6)) {
		t.Error("1% difference should fail a 1e-6 tolerance")
	}

	// Non-positive tolerances are ignored, leaving the default in place.
	if !CompareGradient([]float64{1}, []float64{1.00005}, WithTolerance(-1)) {
		t.Error("negative tolerance should fall back to the default")
	}
	if !CompareGradient([]float64{1}, []float64{1.00005}, WithTolerance(math.NaN())) {
		t.Error("NaN tolerance should fall back to the default")
	}
}

func TestCompareGradientReportsEveryMismatch(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 2.5, 3, 4.5}

	var reports []Mismatch
	ok := CompareGradient(x, y, WithReporter(func(m Mismatch) {
		reports = append(reports, m)
	}))

	if ok {
		t.Fatal("expected comparison to fail")
	}

	// The scan must visit all elements, not stop at the first failure.
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}

	first := reports[0]
	if first.Label != "gradient" {
		t.Errorf("Label = %q, want %q", first.Label, "gradient")
	}
	if first.Row != 1 || first.Col != 0 {
		t.Errorf("position = (%d, %d), want (1, 0)", first.Row, first.Col)
	}
	if first.X != 2 || first.Y != 2.5 {
		t.Errorf("values = (%v, %v), want (2, 2.5)", first.X, first.Y)
	}
	if first.AbsDiff != 0.5 {
		t.Errorf("AbsDiff = %v, want 0.5", first.AbsDiff)
	}
	if first.RelDiff != 0.5/2.5 {
		t.Errorf("RelDiff = %v, want %v", first.RelDiff, 0.5/2.5)
	}
	if first.Tol != DefaultTolerance {
		t.Errorf("Tol = %v, want %v", first.Tol, DefaultTolerance)
	}

	if reports[1].Row != 3 {
		t.Errorf("second report at row %d, want 3", reports[1].Row)
	}
}

func TestCompareGradientReporterSilentOnSuccess(t *testing.T) {
	var called bool
	ok := CompareGradient([]float64{1, 2}, []float64{1, 2}, WithReporter(func(Mismatch) {
		called = true
	}))

	if !ok {
		t.Fatal("expected comparison to succeed")
	}
	if called {
		t.Error("reporter invoked although every element agreed")
	}
}

func TestCompareJacobian(t *testing.T) {
	x := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	y := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	if !CompareJacobian(x, y) {
		t.Error("identical matrices should agree")
	}

	y.Set(1, 2, 6.1)
	if CompareJacobian(x, y) {
		t.Error("perturbed matrix should disagree")
	}
}

func TestCompareJacobianShapeMismatch(t *testing.T) {
	// Same data, transposed shapes: must be false, not a panic.
	x := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	y := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	var called bool
	ok := CompareJacobian(x, y, WithReporter(func(Mismatch) { called = true }))

	if ok {
		t.Error("2×3 and 3×2 matrices should never agree")
	}
	if called {
		t.Error("shape mismatches are not element mismatches; reporter must stay silent")
	}

	if CompareJacobian(nil, y) || CompareJacobian(x, nil) {
		t.Error("nil should never agree")
	}
}

func TestCompareJacobianMixedTypes(t *testing.T) {
	// Any mat.Matrix works, including symmetric matrices and views.
	sym := mat.NewSymDense(2, []float64{1, 2, 2, 5})
	dense := mat.NewDense(2, 2, []float64{1, 2, 2, 5})

	if !CompareJacobian(sym, dense) {
		t.Error("equal symmetric and dense matrices should agree")
	}

	if !CompareJacobian(dense.T(), dense) {
		t.Error("the matrix is symmetric, so its transpose view should agree")
	}
}

func TestCompareJacobianReportPosition(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	y := mat.NewDense(2, 2, []float64{1, 2, 3.5, 4})

	var reports []Mismatch
	CompareJacobian(x, y, WithReporter(func(m Mismatch) { reports = append(reports, m) }))

	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	if reports[0].Row != 1 || reports[0].Col != 0 {
		t.Errorf("position = (%d, %d), want (1, 0)", reports[0].Row, reports[0].Col)
	}
	if reports[0].Label != "jacobian" {
		t.Errorf("Label = %q, want %q", reports[0].Label, "jacobian")
	}
}

func TestCompareHessian(t *testing.T) {
	x := mat.NewSymDense(2, []float64{2, -1, -1, 2})
	y := mat.NewSymDense(2, []float64{2, -1, -1, 2.5})

	if !CompareHessian(x, x) {
		t.Error("a Hessian should agree with itself")
	}

	var reports []Mismatch
	if CompareHessian(x, y, WithReporter(func(m Mismatch) { reports = append(reports, m) })) {
		t.Error("perturbed Hessian should disagree")
	}

	if len(reports) == 0 {
		t.Fatal("expected at least one report")
	}
	if reports[0].Label != "hessian" {
		t.Errorf("Label = %q, want %q", reports[0].Label, "hessian")
	}
}

func TestCompareLabelOverride(t *testing.T) {
	var reports []Mismatch
	CompareHessian(
		mat.NewDense(1, 1, []float64{1}),
		mat.NewDense(1, 1, []float64{2}),
		WithLabel("projected hessian"),
		WithReporter(func(m Mismatch) { reports = append(reports, m) }),
	)

	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	if reports[0].Label != "projected hessian" {
		t.Errorf("Label = %q, want %q", reports[0].Label, "projected hessian")
	}
}
