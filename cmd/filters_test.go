package cmd

import (
	"testing"

	"github.com/ZYADEV/DataViz/internal/dataset"
)

func TestParseFilterFlags(t *testing.T) {
	specs, err := parseFilterFlags(
		[]string{"Region=North,South", "Revenue=900"},
		[]string{"Date:2021-01-01:2021-06-30", "Units:5:20"},
	)
	if err != nil {
		t.Fatalf("parseFilterFlags: %v", err)
	}
	if len(specs) != 4 {
		t.Fatalf("specs = %d, want 4", len(specs))
	}

	region := specs[0]
	if region.Column != "Region" || len(region.Values) != 2 || region.Values[0] != "North" {
		t.Fatalf("region spec = %+v", region)
	}
	// Numeric tokens are coerced so they match normalized cells.
	if specs[1].Values[0] != 900.0 {
		t.Fatalf("revenue candidate = %#v, want float64", specs[1].Values[0])
	}
	if specs[2].Min != "2021-01-01" || specs[2].Max != "2021-06-30" {
		t.Fatalf("date spec = %+v", specs[2])
	}
	if specs[3].Min != 5.0 || specs[3].Max != 20.0 {
		t.Fatalf("units spec = %+v", specs[3])
	}
}

func TestParseFilterFlagsInvalid(t *testing.T) {
	if _, err := parseFilterFlags([]string{"noequals"}, nil); err == nil {
		t.Fatal("expected error for malformed --where")
	}
	if _, err := parseFilterFlags(nil, []string{"col:only-min"}); err == nil {
		t.Fatal("expected error for malformed --between")
	}
}

func TestParseFilterFlagsApplied(t *testing.T) {
	rows := []dataset.Row{
		{"Region": "North", "Revenue": 1200.0},
		{"Region": "South", "Revenue": 900.0},
	}
	specs, err := parseFilterFlags([]string{"Revenue=900"}, nil)
	if err != nil {
		t.Fatalf("parseFilterFlags: %v", err)
	}
	got := dataset.ApplyFilters(rows, specs)
	if len(got) != 1 || got[0]["Region"] != "South" {
		t.Fatalf("filtered = %v, want the South row", got)
	}
}
