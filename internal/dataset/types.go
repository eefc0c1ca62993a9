package dataset

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ColumnType is the semantic type inferred for a column.
type ColumnType uint8

const (
	StringType ColumnType = iota
	IntegerType
	FloatType
	DateType
	BooleanType
)

func (t ColumnType) String() string {
	switch t {
	case StringType:
		return "string"
	case IntegerType:
		return "integer"
	case FloatType:
		return "float"
	case DateType:
		return "date"
	case BooleanType:
		return "boolean"
	}
	return ""
}

func (t ColumnType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ColumnType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = columnTypeFromString(s)
	return nil
}

func (t ColumnType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *ColumnType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*t = columnTypeFromString(s)
	return nil
}

func columnTypeFromString(s string) ColumnType {
	switch strings.ToLower(s) {
	case "integer":
		return IntegerType
	case "float":
		return FloatType
	case "date":
		return DateType
	case "boolean":
		return BooleanType
	}
	return StringType
}

// Row maps a sanitized column name to its value. Values are float64 or
// string; a missing or null source value is the empty string, never nil.
type Row map[string]any

// Column describes one profiled column. Min and Max are set only for
// numeric columns (float64) and date columns (ISO-8601 string).
type Column struct {
	Name         string     `json:"name" yaml:"name"`
	Type         ColumnType `json:"type" yaml:"type"`
	UniqueValues int        `json:"unique_values" yaml:"unique_values"`
	Min          any        `json:"min,omitempty" yaml:"min,omitempty"`
	Max          any        `json:"max,omitempty" yaml:"max,omitempty"`
	SampleValues []any      `json:"sample_values,omitempty" yaml:"sample_values,omitempty"`
}

// Profile is the structured description of an ingested dataset. It is
// built once per ingestion and treated as immutable; re-profiling
// replaces it wholesale.
type Profile struct {
	DatasetName string   `json:"dataset_name" yaml:"dataset_name"`
	Columns     []Column `json:"columns" yaml:"columns"`
	SampleRows  []Row    `json:"sample_rows" yaml:"sample_rows"`
	Rows        []Row    `json:"-" yaml:"-"`
	TotalRows   int      `json:"total_rows" yaml:"total_rows"`
}

// Column returns the profiled column with the given name, if present.
func (p *Profile) Column(name string) (Column, bool) {
	for _, c := range p.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Dataset pairs a profile with its identity. Each ingestion produces a
// fresh Dataset; consumers treat the latest one as authoritative.
type Dataset struct {
	ID         string    `json:"id" yaml:"id"`
	SourceFile string    `json:"source_file" yaml:"source_file"`
	Profile    *Profile  `json:"profile" yaml:"profile"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// NewDataset wraps a freshly built profile with a generated identity.
func NewDataset(sourceFile string, p *Profile) *Dataset {
	return &Dataset{
		ID:         uuid.NewString(),
		SourceFile: sourceFile,
		Profile:    p,
		CreatedAt:  time.Now(),
	}
}

// FilterSpec is a declarative predicate over one column. A non-empty
// Values set selects rows by membership; otherwise Min and Max, when
// both are present, bound the value numerically or by date. A spec with
// neither criterion matches every row.
type FilterSpec struct {
	Column string `json:"column" yaml:"column"`
	Values []any  `json:"values,omitempty" yaml:"values,omitempty"`
	Min    any    `json:"min,omitempty" yaml:"min,omitempty"`
	Max    any    `json:"max,omitempty" yaml:"max,omitempty"`
}

// Stats holds descriptive statistics for a numeric column. Mean, Median
// and Std are rounded to 2 decimal places; Min and Max are exact.
type Stats struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Std    float64 `json:"std" yaml:"std"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
}
