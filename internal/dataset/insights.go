package dataset

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	outlierZThreshold     = 2.5
	minOutlierSamples     = 5
	correlationMin        = 0.6
	minCorrelationSamples = 5
	topCategoryCount      = 3
	maxCorrelationPairs   = 3
)

var (
	yearRe         = regexp.MustCompile(`(?:19|20)\d{2}`)
	dateLikeNameRe = regexp.MustCompile(`(?i)^y(ea)?r?$|year|date|time|occur`)
)

// ComputeInsights derives human-readable findings from a profile and a
// row set: year-over-year change, top category contributions, outlier
// counts and strong pairwise correlations. topN bounds the category
// breakdown; zero or negative falls back to the default of 3. Each
// insight is emitted only when the columns it needs exist and its
// guards hold, so the result may be empty.
func ComputeInsights(p *Profile, rows []Row, topN int) []string {
	if topN <= 0 {
		topN = topCategoryCount
	}
	var out []string

	numeric := numericColumns(p)
	categorical := categoricalColumns(p)
	dateLike := dateLikeColumns(p)

	if len(dateLike) > 0 {
		// The metric must be a different column than the date axis; a
		// numeric year column would otherwise be summed against itself.
		for _, nc := range numeric {
			if nc == dateLike[0] {
				continue
			}
			if s, ok := yearOverYear(rows, dateLike[0], nc); ok {
				out = append(out, s)
			}
			break
		}
	}
	if len(categorical) > 0 && len(numeric) > 0 {
		if s, ok := topCategories(rows, categorical[0], numeric[0], topN); ok {
			out = append(out, s)
		}
	}
	// The examined column is the first numeric one with enough parseable
	// values, so a sparse leading column does not mask a later one.
	for _, nc := range numeric {
		values := columnValues(rows, nc)
		if len(values) <= minOutlierSamples {
			continue
		}
		if s, ok := outlierSummary(nc, values); ok {
			out = append(out, s)
		}
		break
	}
	out = append(out, strongCorrelations(rows, numeric)...)

	return out
}

func numericColumns(p *Profile) []string {
	var out []string
	for _, c := range p.Columns {
		if c.Type == IntegerType || c.Type == FloatType {
			out = append(out, c.Name)
		}
	}
	return out
}

func categoricalColumns(p *Profile) []string {
	var out []string
	for _, c := range p.Columns {
		if c.Type == StringType {
			out = append(out, c.Name)
		}
	}
	return out
}

// dateLikeColumns selects date-typed columns plus any column whose name
// hints at time, which catches year columns that inference kept numeric.
func dateLikeColumns(p *Profile) []string {
	var out []string
	for _, c := range p.Columns {
		if c.Type == DateType || dateLikeNameRe.MatchString(c.Name) {
			out = append(out, c.Name)
		}
	}
	return out
}

// yearOverYear sums the metric column per extracted year and compares
// the two most recent years present. Emitted only when the prior year's
// total is non-zero.
func yearOverYear(rows []Row, dateCol, numCol string) (string, bool) {
	totals := make(map[int]float64)
	for _, r := range rows {
		y, ok := extractYear(r[dateCol])
		if !ok {
			continue
		}
		if f, ok := toFloat(r[numCol]); ok {
			totals[y] += f
		}
	}
	if len(totals) < 2 {
		return "", false
	}
	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Ints(years)
	prev, cur := years[len(years)-2], years[len(years)-1]
	if totals[prev] == 0 {
		return "", false
	}
	pct := (totals[cur] - totals[prev]) / totals[prev] * 100
	return fmt.Sprintf("%s changed %+.1f%% year-over-year (%d: %.2f → %d: %.2f)",
		numCol, pct, prev, totals[prev], cur, totals[cur]), true
}

// extractYear pulls a 4-digit year out of a date-like value: first by
// pattern match on the text, then by parsing it as a date.
func extractYear(v any) (int, bool) {
	if v == "" || v == nil {
		return 0, false
	}
	s := strings.TrimSpace(stringifyValue(v))
	if m := yearRe.FindString(s); m != "" {
		y, err := strconv.Atoi(m)
		if err == nil {
			return y, true
		}
	}
	if t, ok := parseDateLoose(s); ok {
		return t.Year(), true
	}
	return 0, false
}

// topCategories sums the metric per category and reports the top limit
// categories as integer percentages of the grand total.
func topCategories(rows []Row, catCol, numCol string, limit int) (string, bool) {
	totals := make(map[string]float64)
	var order []string
	for _, r := range rows {
		c, ok := r[catCol].(string)
		if !ok || c == "" {
			continue
		}
		f, ok := toFloat(r[numCol])
		if !ok {
			continue
		}
		if _, seen := totals[c]; !seen {
			order = append(order, c)
		}
		totals[c] += f
	}
	var grand float64
	for _, t := range totals {
		grand += t
	}
	if grand <= 0 {
		return "", false
	}
	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	parts := make([]string, len(order))
	for i, c := range order {
		parts[i] = fmt.Sprintf("%s (%d%%)", c, int(math.Round(totals[c]/grand*100)))
	}
	return fmt.Sprintf("Top %s by %s: %s", catCol, numCol, strings.Join(parts, ", ")), true
}

// columnValues collects the parseable numeric values of a column.
func columnValues(rows []Row, col string) []float64 {
	var out []float64
	for _, r := range rows {
		if f, ok := toFloat(r[col]); ok {
			out = append(out, f)
		}
	}
	return out
}

// outlierSummary counts the values whose absolute z-score exceeds the
// threshold, using population statistics. Nothing is emitted for a
// constant column.
func outlierSummary(numCol string, values []float64) (string, bool) {
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
	if std <= 0 {
		return "", false
	}
	var count int
	for _, v := range values {
		if math.Abs((v-mean)/std) > outlierZThreshold {
			count++
		}
	}
	if count == 0 {
		return fmt.Sprintf("No strong outliers detected in %s (|z| ≤ %.1f)", numCol, outlierZThreshold), true
	}
	return fmt.Sprintf("%s contains %d outlier value(s) with |z| > %.1f", numCol, count, outlierZThreshold), true
}

// strongCorrelations computes Pearson r for every unordered pair of
// numeric columns with enough co-present values and reports up to the
// top 3 pairs with |r| at or above the cutoff.
func strongCorrelations(rows []Row, numeric []string) []string {
	type pairCorr struct {
		a, b string
		r    float64
	}
	var pairs []pairCorr
	for i := 0; i < len(numeric); i++ {
		for j := i + 1; j < len(numeric); j++ {
			xs, ys := pairedValues(rows, numeric[i], numeric[j])
			if len(xs) < minCorrelationSamples {
				continue
			}
			r := pearson(xs, ys)
			if math.Abs(r) >= correlationMin {
				pairs = append(pairs, pairCorr{numeric[i], numeric[j], r})
			}
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].r) > math.Abs(pairs[j].r)
	})
	if len(pairs) > maxCorrelationPairs {
		pairs = pairs[:maxCorrelationPairs]
	}
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = fmt.Sprintf("Strong correlation between %s and %s (r=%.2f)", p.a, p.b, p.r)
	}
	return out
}

// pairedValues collects the co-present finite values of two columns.
func pairedValues(rows []Row, a, b string) ([]float64, []float64) {
	var xs, ys []float64
	for _, r := range rows {
		x, okX := toFloat(r[a])
		y, okY := toFloat(r[b])
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}

// pearson is the standard covariance-over-product-of-deviations
// correlation coefficient; it returns 0 for empty input or when either
// column has zero variance.
func pearson(xs, ys []float64) float64 {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0
	}
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n
	var cov, dx2, dy2 float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		dx2 += dx * dx
		dy2 += dy * dy
	}
	if dx2 == 0 || dy2 == 0 {
		return 0
	}
	return cov / math.Sqrt(dx2*dy2)
}
