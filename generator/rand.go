package generator

import (
	"math"
	"math/rand"
)

// weightedIndex draws an index from weights, which must be normalized
// (sum to 1). The last index absorbs any floating-point remainder.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	r := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}

// weightedString draws one item using the paired normalized weights.
func weightedString(rng *rand.Rand, items []string, weights []float64) string {
	return items[weightedIndex(rng, weights)]
}

// uniform draws from [min, max).
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// intBetween draws an integer from [min, max] inclusive.
func intBetween(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// round2 rounds a currency amount to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round3 rounds a fraction to three decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
