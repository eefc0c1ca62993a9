package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type jsonDecoder struct{}

func (jsonDecoder) CanDecode(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".json")
}

// Decode accepts either a top-level array of objects or an object
// wrapping one under a "data" key. Column order is taken from the key
// order of the first record, which a plain unmarshal into Go maps would
// lose, so it is recovered with a token scan.
func (jsonDecoder) Decode(content []byte) ([]map[string]any, []string, error) {
	var rows []map[string]any
	if err := json.Unmarshal(content, &rows); err != nil {
		var wrapper struct {
			Data []map[string]any `json:"data"`
		}
		if err2 := json.Unmarshal(content, &wrapper); err2 != nil || wrapper.Data == nil {
			return nil, nil, fmt.Errorf("decode json: %w", err)
		}
		rows = wrapper.Data
	}
	return rows, firstObjectKeyOrder(content), nil
}

// firstObjectKeyOrder walks the token stream to the first object inside
// an array and returns its top-level keys in source order.
func firstObjectKeyOrder(content []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(content))
	inArray := false
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '[':
				inArray = true
			case '{':
				if inArray {
					return objectKeys(dec)
				}
			}
		}
	}
}

// objectKeys reads the remainder of an already-opened object and
// collects its top-level keys, skipping over nested values.
func objectKeys(dec *json.Decoder) []string {
	var keys []string
	depth := 0
	isKey := true
	for {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				if depth == 0 {
					return keys
				}
				depth--
			}
			if depth == 0 {
				isKey = true
			}
			continue
		}
		if depth > 0 {
			continue
		}
		if isKey {
			if s, ok := tok.(string); ok {
				keys = append(keys, s)
			}
			isKey = false
		} else {
			isKey = true
		}
	}
}
