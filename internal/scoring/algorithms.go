package scoring

import "math"

// EditDistance is the Levenshtein distance between two sequences with unit
// insertion, deletion and substitution costs.
func EditDistance[T comparable](a, b []T) int {
	m, n := len(a), len(b)

	// two rolling rows of the DP table
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// Average returns the arithmetic mean of values, or 0 for an empty slice.
func Average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// roundInt rounds half away from zero. All scores are non-negative, so this
// is round-half-up.
func roundInt(x float64) int {
	return int(math.Round(x))
}

// percent returns round(100 * num / den). Callers guard den > 0.
func percent(num, den int) int {
	return roundInt(float64(num) / float64(den) * 100)
}

func clampScore(score int) int {
	return max(0, min(100, score))
}
