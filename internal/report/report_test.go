package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ZYADEV/DataViz/internal/dataset"
)

func fixtureDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	raw := []map[string]any{
		{"Region": "North", "Revenue": "1,200"},
		{"Region": "South", "Revenue": "900"},
	}
	p, err := dataset.BuildProfile(raw, []string{"Region", "Revenue"}, "sales.csv")
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}
	return dataset.NewDataset("sales.csv", p)
}

func TestMarkdown(t *testing.T) {
	d := fixtureDataset(t)
	stats := map[string]dataset.Stats{
		"Revenue": dataset.Describe(d.Profile.Rows, "Revenue"),
	}
	md := Markdown(d, stats, []string{"something notable"}, Options{MaxPreviewCell: 80})

	for _, want := range []string{
		"[DATASET PROFILE]",
		"Name: sales",
		"Rows: 2",
		"[SCHEMA]",
		"- Region: string (unique 2)",
		"- Revenue: integer (unique 2) — range 900 to 1200",
		"[STATISTICS]",
		"- Revenue: count 2, mean 1050",
		"[SAMPLE ROWS]",
		"| Region | Revenue |",
		"| North | 1200 |",
		"[INSIGHTS]",
		"- something notable",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdownTruncatesLongCells(t *testing.T) {
	raw := []map[string]any{{"note": strings.Repeat("x", 200)}}
	p, err := dataset.BuildProfile(raw, []string{"note"}, "notes.csv")
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}
	md := Markdown(dataset.NewDataset("notes.csv", p), nil, nil, Options{MaxPreviewCell: 80})
	if !strings.Contains(md, strings.Repeat("x", 77)+"...") {
		t.Fatalf("long cell not truncated:\n%s", md)
	}
	if strings.Contains(md, strings.Repeat("x", 81)) {
		t.Fatalf("cell exceeds preview limit:\n%s", md)
	}
}

func TestMarkdownCapsSamples(t *testing.T) {
	raw := []map[string]any{
		{"Region": "r1", "Revenue": "100"},
		{"Region": "r2", "Revenue": "200"},
		{"Region": "r3", "Revenue": "300"},
		{"Region": "r4", "Revenue": "400"},
	}
	p, err := dataset.BuildProfile(raw, []string{"Region", "Revenue"}, "sales.csv")
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}
	d := dataset.NewDataset("sales.csv", p)
	md := Markdown(d, nil, nil, Options{MaxSampleRows: 2, MaxSampleValues: 1})

	if !strings.Contains(md, "| r1 |") || !strings.Contains(md, "| r2 |") {
		t.Fatalf("first two sample rows missing:\n%s", md)
	}
	if strings.Contains(md, "r3") {
		t.Fatalf("third row must be cut by the sample-row cap:\n%s", md)
	}
	if strings.Contains(md, "e.g. r1, r2") {
		t.Fatalf("sample values must be capped at one:\n%s", md)
	}
}

func TestWriteYAML(t *testing.T) {
	d := fixtureDataset(t)
	var buf bytes.Buffer
	if err := WriteYAML(&buf, d, []string{"note"}); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"dataset_name: sales",
		"type: integer",
		"total_rows: 2",
		"insights:",
		"- note",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("yaml missing %q:\n%s", want, out)
		}
	}
}
