// Package random defines the single injectable random source every
// simulation component draws from.
package random

import (
	"math/rand"

	"github.com/google/uuid"
)

// Source is the random source contract. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
	Int63() int64
	Read(p []byte) (int, error)
}

// New returns a deterministic source for seed.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // game simulation, reproducibility over secrecy
}

// Between returns a uniform integer in [lo, hi]. It returns lo when hi < lo.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Uniform returns a uniform float in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// ID draws a UUID from src so identities replay with the seed.
func ID(src Source) string {
	id, err := uuid.NewRandomFromReader(src)
	if err != nil {
		// rand.Rand.Read never fails; keep a unique id regardless.
		return uuid.NewString()
	}
	return id.String()
}
