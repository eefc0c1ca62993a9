// Package report renders profiled datasets for the terminal and for
// file export. It is a presentation consumer of the dataset core and
// never feeds anything back into it.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ZYADEV/DataViz/internal/dataset"
)

// Options controls rendering details.
type Options struct {
	// MaxPreviewCell truncates sample-row cells longer than this many
	// characters. 0 means no truncation.
	MaxPreviewCell int
	// MaxSampleRows and MaxSampleValues cap how many of the profile's
	// sample rows and per-column sample values are shown. 0 shows
	// everything the profile carries.
	MaxSampleRows   int
	MaxSampleValues int
}

// Markdown renders a compact profile summary suitable for the terminal
// or a standalone document.
func Markdown(d *dataset.Dataset, stats map[string]dataset.Stats, insights []string, opt Options) string {
	p := d.Profile
	var b strings.Builder

	b.WriteString("[DATASET PROFILE]\n")
	b.WriteString(fmt.Sprintf("Name: %s\n", p.DatasetName))
	if d.SourceFile != "" {
		b.WriteString(fmt.Sprintf("Source: %s\n", d.SourceFile))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", p.TotalRows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(p.Columns)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range p.Columns {
		b.WriteString(fmt.Sprintf("- %s: %s (unique %d)", c.Name, c.Type, c.UniqueValues))
		if c.Min != nil && c.Max != nil {
			b.WriteString(fmt.Sprintf(" — range %s to %s", renderValue(c.Min, 0), renderValue(c.Max, 0)))
		}
		if len(c.SampleValues) > 0 {
			samples := c.SampleValues
			if opt.MaxSampleValues > 0 && len(samples) > opt.MaxSampleValues {
				samples = samples[:opt.MaxSampleValues]
			}
			vals := make([]string, len(samples))
			for i, v := range samples {
				vals[i] = renderValue(v, opt.MaxPreviewCell)
			}
			b.WriteString(" — e.g. ")
			b.WriteString(strings.Join(vals, ", "))
		}
		b.WriteString("\n")
	}

	if len(stats) > 0 {
		b.WriteString("\n[STATISTICS]\n")
		for _, c := range p.Columns {
			s, ok := stats[c.Name]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("- %s: count %d, mean %g, median %g, std %g, min %g, max %g\n",
				c.Name, s.Count, s.Mean, s.Median, s.Std, s.Min, s.Max))
		}
	}

	if len(p.SampleRows) > 0 {
		b.WriteString("\n[SAMPLE ROWS]\n")
		writeSampleTable(&b, p, opt)
	}

	if len(insights) > 0 {
		b.WriteString("\n[INSIGHTS]\n")
		for _, s := range insights {
			b.WriteString("- ")
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeSampleTable(b *strings.Builder, p *dataset.Profile, opt Options) {
	b.WriteString("| ")
	for i, c := range p.Columns {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(safeCell(c.Name))
	}
	b.WriteString(" |\n| ")
	for i := range p.Columns {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString("---")
	}
	b.WriteString(" |\n")
	rows := p.SampleRows
	if opt.MaxSampleRows > 0 && len(rows) > opt.MaxSampleRows {
		rows = rows[:opt.MaxSampleRows]
	}
	for _, row := range rows {
		b.WriteString("| ")
		for i, c := range p.Columns {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(safeCell(renderValue(row[c.Name], opt.MaxPreviewCell)))
		}
		b.WriteString(" |\n")
	}
}

// yamlExport is the shape written by WriteYAML; full rows are omitted
// on purpose, the export is a summary artifact.
type yamlExport struct {
	Dataset  *dataset.Dataset `yaml:"dataset"`
	Insights []string         `yaml:"insights,omitempty"`
}

// WriteYAML writes the profile and insights as a YAML document.
func WriteYAML(w io.Writer, d *dataset.Dataset, insights []string) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlExport{Dataset: d, Insights: insights}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// renderValue formats a row value for display, truncating long text.
func renderValue(v any, maxLen int) string {
	var s string
	switch x := v.(type) {
	case nil:
		s = ""
	case string:
		s = x
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	default:
		s = fmt.Sprint(x)
	}
	if maxLen > 3 && len(s) > maxLen {
		s = s[:maxLen-3] + "..."
	}
	return s
}

func safeCell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
