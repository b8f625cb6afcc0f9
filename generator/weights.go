package generator

// NormalizeWeights scales the weight vector so it sums to 1. An empty
// or all-zero vector normalizes to a uniform distribution, so a
// degenerate form input never divides by zero.
func NormalizeWeights(weights []float64) []float64 {
	if len(weights) == 0 {
		return nil
	}

	sum := 0.0
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}

	out := make([]float64, len(weights))
	if sum == 0 {
		u := 1.0 / float64(len(weights))
		for i := range out {
			out[i] = u
		}
		return out
	}

	for i, w := range weights {
		if w > 0 {
			out[i] = w / sum
		}
	}
	return out
}
