package matching

import "math"

// Score converts a vector-search distance into a matching percentage.
// A distance of exactly zero is a perfect match. Everything else decays
// as 100/(1+distance), rounded to two decimals, so the result never
// reaches zero for a finite distance.
func Score(distance float64) float64 {
	if distance == 0 {
		return 100.0
	}
	return math.Round(100*(1/(1+distance))*100) / 100
}
