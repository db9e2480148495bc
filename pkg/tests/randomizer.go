package tests

import (
	"math/rand"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

// NewSeededRandomizer is used by property tests that need a reproducible sequence.
func NewSeededRandomizer(seed int64) Randomizer {
	random := rand.New(rand.NewSource(seed)) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// Pick returns a random element of values.
func Pick[T any](r Randomizer, values []T) T {
	return values[r.Intn(len(values))]
}
