package testutil

import "testing"

func TestRandomVector(t *testing.T) {
	a := RandomVector(42, 64)
	b := RandomVector(42, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vector not deterministic at index %d", i)
		}
	}
	// All values in [-1, 1).
	for i, v := range a {
		if v < -1 || v >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, v)
		}
	}
}

func TestRandomVectorDifferentSeeds(t *testing.T) {
	a := RandomVector(1, 16)
	b := RandomVector(2, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical vectors")
	}
}

func TestRandomDense(t *testing.T) {
	m := RandomDense(7, 3, 5)
	r, c := m.Dims()
	if r != 3 || c != 5 {
		t.Fatalf("dims = %d×%d, want 3×5", r, c)
	}
	n := RandomDense(7, 3, 5)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != n.At(i, j) {
				t.Fatalf("matrix not deterministic at (%d, %d)", i, j)
			}
		}
	}
}
