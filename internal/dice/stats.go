package dice

// Histogram counts how often each face occurs in values.
// Index 0 holds face 1. Out-of-range values are ignored.
func Histogram(values []int) [Sides]int {
	var h [Sides]int
	for _, v := range values {
		if Valid(v) {
			h[v-1]++
		}
	}
	return h
}

// ChiSquare returns Pearson's chi-square statistic of counts against a
// uniform distribution over len(counts) outcomes.
// It returns 0 when there are no observations.
func ChiSquare(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}

	expected := float64(total) / float64(len(counts))
	var chi float64
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi
}

// CriticalChiSquare is the 0.999 quantile of chi-square with 19 degrees of
// freedom. A fair die exceeds it about once in a thousand samples.
const CriticalChiSquare = 43.82
