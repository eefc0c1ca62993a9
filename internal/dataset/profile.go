package dataset

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

const (
	maxSampleValues = 5
	maxSampleRows   = 10
)

// ErrEmptyDataset is returned when profiling is asked to run over no
// rows at all.
var ErrEmptyDataset = errors.New("empty dataset")

// BuildProfile normalizes the raw rows and assembles the dataset
// profile: per-column inferred types, cardinality, ranges and samples.
// columnOrder fixes the first-seen column order (pass the decoder's
// header order; nil falls back to a reconstructed order, see Normalize).
// The stored dataset name is datasetName with its file extension
// stripped.
func BuildProfile(raw []map[string]any, columnOrder []string, datasetName string) (*Profile, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyDataset
	}

	rows, names := Normalize(raw, columnOrder)

	columns := make([]Column, 0, len(names))
	for _, name := range names {
		values := nonEmptyValues(rows, name)
		col := Column{
			Name:         name,
			Type:         InferType(values),
			UniqueValues: distinctCount(values),
			SampleValues: sampleValues(values, maxSampleValues),
		}
		switch col.Type {
		case IntegerType, FloatType:
			col.Min, col.Max = numericRange(values)
		case DateType:
			col.Min, col.Max = dateRange(values)
		}
		columns = append(columns, col)
	}

	sampleLen := len(rows)
	if sampleLen > maxSampleRows {
		sampleLen = maxSampleRows
	}

	return &Profile{
		DatasetName: strings.TrimSuffix(datasetName, filepath.Ext(datasetName)),
		Columns:     columns,
		SampleRows:  rows[:sampleLen],
		Rows:        rows,
		TotalRows:   len(rows),
	}, nil
}

func nonEmptyValues(rows []Row, name string) []any {
	var out []any
	for _, r := range rows {
		if v := r[name]; v != "" {
			out = append(out, v)
		}
	}
	return out
}

func distinctCount(values []any) int {
	seen := make(map[any]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// sampleValues returns up to limit distinct values in encounter order.
func sampleValues(values []any, limit int) []any {
	var out []any
	seen := make(map[any]struct{})
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}

// numericRange returns the min and max over values that parse as
// numbers, or nil bounds when none do.
func numericRange(values []any) (any, any) {
	var lo, hi float64
	found := false
	for _, v := range values {
		f, ok := toFloat(v)
		if !ok {
			continue
		}
		if !found {
			lo, hi = f, f
			found = true
			continue
		}
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	if !found {
		return nil, nil
	}
	return lo, hi
}

// dateRange returns the earliest and latest parseable dates rendered as
// ISO-8601 strings, or nil bounds when nothing parses.
func dateRange(values []any) (any, any) {
	var lo, hi time.Time
	found := false
	for _, v := range values {
		t, ok := parseDateString(strings.ToLower(strings.TrimSpace(stringifyValue(v))))
		if !ok {
			continue
		}
		if !found {
			lo, hi = t, t
			found = true
			continue
		}
		if t.Before(lo) {
			lo = t
		}
		if t.After(hi) {
			hi = t
		}
	}
	if !found {
		return nil, nil
	}
	return lo.UTC().Format(time.RFC3339), hi.UTC().Format(time.RFC3339)
}
