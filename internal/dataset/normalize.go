package dataset

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// Headers a spreadsheet reader emits for blank cells, e.g. "__EMPTY"
	// or "__EMPTY_3", and auto-numbered placeholders like "_1" or "12".
	emptyHeaderRe  = regexp.MustCompile(`^__EMPTY(?:_\d+)?$`)
	autoNumberedRe = regexp.MustCompile(`^_*\d+$`)

	// Numeric string shapes. Thousands groups may be separated by a
	// comma or a space; the plain form is a signed integer or decimal.
	thousandsRe   = regexp.MustCompile(`^-?\d{1,3}(?:[, ]\d{3})+(?:\.\d+)?$`)
	plainNumberRe = regexp.MustCompile(`^-?\d+(?:\.\d+)?$`)
)

var separatorStripper = strings.NewReplacer(",", "", " ", "")

// Normalize sanitizes column names and coerces values for the given raw
// rows. columnOrder fixes the first-seen order of the raw keys; when nil
// the order is reconstructed from the rows themselves (keys sorted per
// row, unseen keys appended). Columns that are empty in every row are
// dropped. The input rows are not mutated.
func Normalize(raw []map[string]any, columnOrder []string) ([]Row, []string) {
	keys := columnOrder
	if keys == nil {
		keys = collectKeys(raw)
	}
	names := sanitizeNames(keys)

	rows := make([]Row, len(raw))
	for i, rr := range raw {
		row := make(Row, len(names))
		for j, key := range keys {
			row[names[j]] = CoerceValue(rr[key])
		}
		rows[i] = row
	}

	kept := make([]string, 0, len(names))
	dropped := make(map[string]struct{})
	for _, n := range names {
		if columnEmpty(rows, n) {
			dropped[n] = struct{}{}
		} else {
			kept = append(kept, n)
		}
	}
	if len(dropped) > 0 {
		for _, row := range rows {
			for n := range dropped {
				delete(row, n)
			}
		}
	}
	return rows, kept
}

// sanitizeNames rewrites raw header names to be non-empty and unique.
// Blank, auto-numbered and spreadsheet placeholder headers become
// Column_<n>; duplicates get a numeric suffix checked against every
// name assigned so far.
func sanitizeNames(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, len(raw))
	generated := 0
	for i, name := range raw {
		n := strings.TrimSpace(name)
		if n == "" || autoNumberedRe.MatchString(n) || emptyHeaderRe.MatchString(n) {
			generated++
			n = fmt.Sprintf("Column_%d", generated)
		}
		base := n
		for suffix := 1; ; suffix++ {
			if _, taken := seen[n]; !taken {
				break
			}
			n = fmt.Sprintf("%s_%d", base, suffix)
		}
		seen[n] = struct{}{}
		out[i] = n
	}
	return out
}

// CoerceValue maps a raw cell value to the row value convention:
// float64 for anything that reads as a number, string otherwise, and ""
// for missing. Strings that look numeric but fail to parse keep their
// trimmed text.
func CoerceValue(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(x)
		if thousandsRe.MatchString(s) {
			if f, err := strconv.ParseFloat(separatorStripper.Replace(s), 64); err == nil {
				return f
			}
			return s
		}
		if plainNumberRe.MatchString(s) {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
			return s
		}
		return s
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ""
		}
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

func columnEmpty(rows []Row, name string) bool {
	for _, r := range rows {
		if r[name] != "" {
			return false
		}
	}
	return true
}

// collectKeys reconstructs a stable column order when the decoder did
// not provide one: keys of each row are visited in sorted order and
// appended on first sight.
func collectKeys(raw []map[string]any) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, r := range raw {
		keys := make([]string, 0, len(r))
		for k := range r {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				out = append(out, k)
			}
		}
	}
	return out
}
