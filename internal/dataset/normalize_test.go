package dataset

import (
	"reflect"
	"testing"
)

func TestSanitizeNames(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "clean names pass through trimmed",
			in:   []string{" Revenue ", "Region"},
			want: []string{"Revenue", "Region"},
		},
		{
			name: "placeholders become generated columns",
			in:   []string{"", "__EMPTY", "__EMPTY_2", "_1", "42"},
			want: []string{"Column_1", "Column_2", "Column_3", "Column_4", "Column_5"},
		},
		{
			name: "duplicates get numeric suffixes",
			in:   []string{"id", "id", "id"},
			want: []string{"id", "id_1", "id_2"},
		},
		{
			name: "suffix collision keeps probing",
			in:   []string{"id", "id_1", "id"},
			want: []string{"id", "id_1", "id_2"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeNames(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("sanitizeNames(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeNamesIdempotent(t *testing.T) {
	in := []string{"Revenue", "Region", "Column_1", "id_1"}
	first := sanitizeNames(in)
	second := sanitizeNames(first)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("sanitize not idempotent: %v then %v", first, second)
	}
}

func TestCoerceValue(t *testing.T) {
	cases := []struct {
		in   any
		want any
	}{
		{nil, ""},
		{"  hello ", "hello"},
		{"1,234", 1234.0},
		{"1,234.56", 1234.56},
		{"12 345", 12345.0},
		{"-2,000", -2000.0},
		{"42", 42.0},
		{"-3.14", -3.14},
		{"1,23", "1,23"},             // not a thousands group
		{"v1.2.3", "v1.2.3"},         // not plain numeric
		{"2021-01-05", "2021-01-05"}, // dates stay strings here
		{3.5, 3.5},
		{7, 7.0},
		{true, "true"},
	}
	for _, tc := range cases {
		if got := CoerceValue(tc.in); got != tc.want {
			t.Errorf("CoerceValue(%#v) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDropsEmptyColumns(t *testing.T) {
	raw := []map[string]any{
		{"a": "1", "blank": "", "b": "x"},
		{"a": "2", "blank": nil, "b": ""},
	}
	rows, names := Normalize(raw, []string{"a", "blank", "b"})
	if !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Fatalf("names = %v, want [a b]", names)
	}
	for i, r := range rows {
		if _, ok := r["blank"]; ok {
			t.Fatalf("row %d still has dropped column: %#v", i, r)
		}
	}
	if rows[0]["a"] != 1.0 || rows[1]["a"] != 2.0 {
		t.Fatalf("values not coerced: %#v", rows)
	}
	if rows[1]["b"] != "" {
		t.Fatalf("missing value should be empty string, got %#v", rows[1]["b"])
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	raw := []map[string]any{{"n": "1,000"}}
	Normalize(raw, []string{"n"})
	if raw[0]["n"] != "1,000" {
		t.Fatalf("input mutated: %#v", raw[0])
	}
}

func TestNormalizeRowKeysMatchColumns(t *testing.T) {
	raw := []map[string]any{
		{"a": "1", "b": "x"},
		{"a": "2"}, // b absent entirely
	}
	rows, names := Normalize(raw, []string{"a", "b"})
	for i, r := range rows {
		if len(r) != len(names) {
			t.Fatalf("row %d key count = %d, want %d", i, len(r), len(names))
		}
		for _, n := range names {
			if _, ok := r[n]; !ok {
				t.Fatalf("row %d missing key %q", i, n)
			}
		}
	}
	if rows[1]["b"] != "" {
		t.Fatalf("absent key should coerce to empty string, got %#v", rows[1]["b"])
	}
}
