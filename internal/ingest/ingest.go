// Package ingest decodes tabular source files into the raw row
// mappings consumed by the dataset core. Decoders only reshape bytes
// into rows of string cells; all value coercion and type inference
// happens downstream in the dataset package.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Decoder turns raw file bytes into row mappings plus the column order
// as it appears in the source.
type Decoder interface {
	CanDecode(filename string) bool
	Decode(content []byte) (rows []map[string]any, columnOrder []string, err error)
}

var registry []Decoder

// Register adds a decoder implementation to the registry.
func Register(d Decoder) {
	registry = append(registry, d)
}

// ErrUnsupported indicates no registered decoder handles the file.
var ErrUnsupported = errors.New("unsupported dataset format")

// DecodeFile selects a decoder by filename and returns the raw rows and
// source column order.
func DecodeFile(path string) ([]map[string]any, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	for _, d := range registry {
		if d.CanDecode(path) {
			return d.Decode(data)
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
}

func init() {
	Register(csvDecoder{})
	Register(jsonDecoder{})
}
