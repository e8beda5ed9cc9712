package mathutil

import "math"

// NormalDensity returns the normal distribution density at x for median mu
// and standard deviation sigma. The accretion model evaluates it with
// mu = frostLimit/2 and sigma = frostLimit/16.
func NormalDensity(x, mu, sigma float64) float64 {
	return (1 / (sigma * math.Sqrt(2*math.Pi))) * math.Exp(-math.Pow(x-mu, 2)/(2*sigma*sigma))
}

// InverseExpDecay returns exp(-x^skew), the decay used for mass density
// beyond the frost limit (skew 0.5).
func InverseExpDecay(x, skew float64) float64 {
	return math.Exp(-math.Pow(x, skew))
}

// CDFIndex selects a discrete outcome from a cumulative distribution
// function: the first index whose cumulative upper bound is >= u. Ties break
// toward the lower index. A draw beyond the final bound (possible only when
// the CDF does not reach 1.0) resolves to the last index.
func CDFIndex(u float64, cdf []float64) int {
	if len(cdf) == 0 {
		return -1
	}
	for i, upper := range cdf {
		if u <= upper {
			return i
		}
	}
	return len(cdf) - 1
}
