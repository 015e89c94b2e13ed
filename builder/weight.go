package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces one edge weight. It must be deterministic for a given
// RNG state and never return a negative value.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeight always yields value. Panics if value < 0.
func ConstantWeight(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeight: value must be ≥ 0, got %d", value))
	}

	return func(*rand.Rand) int64 { return value }
}

// UniformWeight samples integers uniformly in [min, max]. With a nil RNG it
// yields min. Panics unless 0 ≤ min ≤ max.
func UniformWeight(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeight: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || min == max {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
