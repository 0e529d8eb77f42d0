package seed

import (
	"github.com/brianvoe/gofakeit/v6"
)

// Rand is the random source the generator draws from.
// Number is inclusive on both ends, Float64Range is [min, max).
type Rand interface {
	Number(min, max int) int
	Float64Range(min, max float64) float64
}

// NewRand returns a seeded source. Seed 0 picks a random seed.
func NewRand(seed int64) Rand {
	return gofakeit.New(seed)
}
