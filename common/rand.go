package common

// Rand is the subset of *rand.Rand (math/rand/v2) the simulation draws from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}
