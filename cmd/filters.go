package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZYADEV/DataViz/internal/dataset"
)

// parseFilterFlags converts --where and --between flag values into
// filter specs. --where takes "column=v1,v2,..."; --between takes
// "column:min:max" where each bound is numeric or a date string.
func parseFilterFlags(where, between []string) ([]dataset.FilterSpec, error) {
	var specs []dataset.FilterSpec
	for _, w := range where {
		col, list, ok := strings.Cut(w, "=")
		if !ok || strings.TrimSpace(col) == "" {
			return nil, fmt.Errorf("invalid --where %q (use column=v1,v2)", w)
		}
		var values []any
		for _, v := range strings.Split(list, ",") {
			if v == "" {
				continue
			}
			// Run candidates through the same coercion as the rows so
			// that "900" matches a cell the normalizer turned numeric.
			values = append(values, dataset.CoerceValue(v))
		}
		specs = append(specs, dataset.FilterSpec{Column: strings.TrimSpace(col), Values: values})
	}
	for _, b := range between {
		parts := strings.SplitN(b, ":", 3)
		if len(parts) != 3 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("invalid --between %q (use column:min:max)", b)
		}
		specs = append(specs, dataset.FilterSpec{
			Column: strings.TrimSpace(parts[0]),
			Min:    parseBound(parts[1]),
			Max:    parseBound(parts[2]),
		})
	}
	return specs, nil
}

// parseBound reads a range bound as a number when possible, otherwise
// keeps it as a string for date comparison.
func parseBound(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
