package dataset

import (
	"math"
	"sort"
)

// Describe computes descriptive statistics for the named column over
// the given rows. Values that do not parse as numbers are skipped; when
// nothing parses the zero Stats is returned. Median is the upper-middle
// element of the sorted values (for even counts this is the defined
// behavior, not the average of the two middle elements), and Std is the
// population standard deviation.
func Describe(rows []Row, column string) Stats {
	var values []float64
	for _, r := range rows {
		if r[column] == "" {
			continue
		}
		if f, ok := toFloat(r[column]); ok {
			values = append(values, f)
		}
	}
	if len(values) == 0 {
		return Stats{}
	}

	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	std := math.Sqrt(sq / n)

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return Stats{
		Count:  len(values),
		Mean:   round2(mean),
		Median: round2(sorted[len(sorted)/2]),
		Std:    round2(std),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
