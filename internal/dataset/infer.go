package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// typeVoteThreshold is the share of values a bucket must reach for
	// its type to win the column.
	typeVoteThreshold = 0.8
	// integerVoteThreshold is the share of numeric values that must be
	// whole for a numeric column to be integer rather than float.
	integerVoteThreshold = 0.9
	// Strings of this length or shorter are never read as dates, so a
	// bare token like "2020" stays numeric.
	minDateStringLen = 4
)

var booleanTokens = map[string]struct{}{
	"true": {}, "false": {},
	"1": {}, "0": {},
	"yes": {}, "no": {},
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	// Classification lowercases values first, so the ISO separators
	// also appear as literal "t"/"z".
	"2006-01-02t15:04:05z",
	"2006-01-02t15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"1/2/2006",
	"02-01-2006",
	"2006-01",
}

var monthNameLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"Jan 2006",
}

// InferType classifies a column from its non-empty values. Each value
// votes for exactly one bucket, tested boolean, then numeric, then
// date; a bucket wins when it holds at least 80% of the votes, checked
// in that same priority order. Numeric columns resolve to integer when
// at least 90% of their numeric votes are whole numbers. Anything else
// is a string column, as is an empty value list.
func InferType(values []any) ColumnType {
	if len(values) == 0 {
		return StringType
	}

	var boolVotes, numVotes, intVotes, dateVotes int
	for _, v := range values {
		s := strings.ToLower(strings.TrimSpace(stringifyValue(v)))
		if _, ok := booleanTokens[s]; ok {
			boolVotes++
			continue
		}
		if f, ok := parseNumericString(s); ok {
			numVotes++
			if f == math.Trunc(f) {
				intVotes++
			}
			continue
		}
		if _, ok := parseDateString(s); ok {
			dateVotes++
		}
		// Unclassified values fall through and vote for nothing.
	}

	total := float64(len(values))
	switch {
	case float64(boolVotes)/total >= typeVoteThreshold:
		return BooleanType
	case float64(dateVotes)/total >= typeVoteThreshold:
		return DateType
	case float64(numVotes)/total >= typeVoteThreshold:
		if float64(intVotes)/float64(numVotes) >= integerVoteThreshold {
			return IntegerType
		}
		return FloatType
	}
	return StringType
}

// parseNumericString parses s if it matches either numeric shape,
// requiring a finite result.
func parseNumericString(s string) (float64, bool) {
	var cleaned string
	switch {
	case thousandsRe.MatchString(s):
		cleaned = separatorStripper.Replace(s)
	case plainNumberRe.MatchString(s):
		cleaned = s
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseDateString accepts s as a date only if some layout parses it and
// it is longer than 4 characters, which keeps bare small integers from
// being read as dates.
func parseDateString(s string) (time.Time, bool) {
	if len(s) <= minDateStringLen {
		return time.Time{}, false
	}
	return parseDateLoose(s)
}

// parseDateLoose tries every known layout without the length guard.
// Range filters use it directly so that explicit date bounds keep
// working regardless of value length.
func parseDateLoose(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	// Month names parse case-sensitively, but classification lowercases
	// its input first, so retry with word-initial capitals restored.
	c := capitalizeWords(s)
	for _, layout := range monthNameLayouts {
		if t, err := time.Parse(layout, c); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// capitalizeWords upper-cases the first letter after each word boundary
// (start of string, space, dash, slash or comma).
func capitalizeWords(s string) string {
	b := []byte(s)
	boundary := true
	for i, c := range b {
		if boundary && c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
		boundary = c == ' ' || c == '-' || c == '/' || c == ','
	}
	return string(b)
}

// stringifyValue renders a row value for classification. Numbers use
// the shortest representation that round-trips.
func stringifyValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
