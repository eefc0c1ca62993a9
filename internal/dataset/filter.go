package dataset

import (
	"math"
	"strconv"
	"strings"
)

// ApplyFilters returns the rows matching every filter, in their
// original order. The input slice is never mutated. A filter that
// carries no usable criteria, or whose criteria cannot be compared to a
// row's value, lets the row through rather than excluding it.
func ApplyFilters(rows []Row, filters []FilterSpec) []Row {
	if len(filters) == 0 {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		keep := true
		for _, f := range filters {
			if !matchesFilter(row, f) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out
}

func matchesFilter(row Row, f FilterSpec) bool {
	raw := row[f.Column]

	// Discrete filter: membership by strict equality on the raw value.
	if len(f.Values) > 0 {
		for _, v := range f.Values {
			if v == raw {
				return true
			}
		}
		return false
	}

	// Range filter requires both bounds; anything less is a no-op.
	if f.Min == nil || f.Max == nil {
		return true
	}

	if v, ok := toFloat(raw); ok {
		if lo, ok := toFloat(f.Min); ok {
			if hi, ok := toFloat(f.Max); ok {
				return v >= lo && v <= hi
			}
		}
	}

	if ts, ok := toEpochMillis(raw); ok {
		if lo, ok := toEpochMillis(f.Min); ok {
			if hi, ok := toEpochMillis(f.Max); ok {
				return ts >= lo && ts <= hi
			}
		}
	}

	// Neither comparison is viable for this row; pass it through.
	return true
}

// toFloat extracts a finite float from a row value or bound.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case int:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// toEpochMillis reads a value as a timestamp: numbers are taken as
// epoch milliseconds directly, strings are parsed as dates.
func toEpochMillis(v any) (int64, bool) {
	switch x := v.(type) {
	case float64:
		return int64(x), true
	case int:
		return int64(x), true
	case int64:
		return x, true
	case string:
		if t, ok := parseDateLoose(x); ok {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}
