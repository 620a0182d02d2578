// Package randutil provides the uniform sampling primitives every burst
// parameter is drawn from. All functions take an explicit *rand.Rand so
// callers (and tests) control seeding.
package randutil

import "math/rand"

// InRange returns a value uniformly distributed in [min, max). A degenerate
// range (min == max) returns min.
func InRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// Pick returns one element of items uniformly at random. The second return
// is false only for an empty slice; callers are expected to guarantee
// non-emptiness.
func Pick[T any](rng *rand.Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[rng.Intn(len(items))], true
}
