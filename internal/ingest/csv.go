package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

type csvDecoder struct{}

func (csvDecoder) CanDecode(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

func (csvDecoder) Decode(content []byte) ([]map[string]any, []string, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = sniffDelimiter(content)

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	header = dedupeHeader(header)

	var rows []map[string]any
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		row := make(map[string]any, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, append([]string(nil), header...), nil
}

// dedupeHeader makes repeated header names unique by position, so a
// duplicate column keeps its own cells instead of overwriting the
// earlier one in the row map. "id,id" becomes "id","id_1", the same
// suffix scheme the downstream name sanitizer uses, which leaves
// already-unique names untouched.
func dedupeHeader(header []string) []string {
	seen := make(map[string]struct{}, len(header))
	out := make([]string, len(header))
	for i, name := range header {
		n := name
		for suffix := 1; ; suffix++ {
			if _, taken := seen[n]; !taken {
				break
			}
			n = fmt.Sprintf("%s_%d", name, suffix)
		}
		seen[n] = struct{}{}
		out[i] = n
	}
	return out
}

// sniffDelimiter inspects the first line: a tab wins, then a semicolon
// when no comma is present, else a comma.
func sniffDelimiter(content []byte) rune {
	line := content
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		line = content[:i]
	}
	switch {
	case bytes.ContainsRune(line, '\t'):
		return '\t'
	case bytes.ContainsRune(line, ';') && !bytes.ContainsRune(line, ','):
		return ';'
	}
	return ','
}
