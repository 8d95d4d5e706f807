package testutil

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandomVector generates a vector with entries in [-1, 1) from a fixed
// seed for reproducibility.
func RandomVector(seed int64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

// RandomDense generates an r×c matrix with entries in [-1, 1) from a fixed
// seed for reproducibility.
func RandomDense(seed int64, r, c int) *mat.Dense {
	return mat.NewDense(r, c, RandomVector(seed, r*c))
}
