package ingest

import (
	"reflect"
	"testing"
)

func TestCSVDecoderDelimiters(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    [][2]string // column, value of first row
	}{
		{
			name:    "comma",
			content: "a,b\n1,2\n",
			want:    [][2]string{{"a", "1"}, {"b", "2"}},
		},
		{
			name:    "semicolon",
			content: "a;b\n1;2\n",
			want:    [][2]string{{"a", "1"}, {"b", "2"}},
		},
		{
			name:    "tab",
			content: "a\tb\n1\t2\n",
			want:    [][2]string{{"a", "1"}, {"b", "2"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, order, err := csvDecoder{}.Decode([]byte(tc.content))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(order, []string{"a", "b"}) {
				t.Fatalf("order = %v", order)
			}
			if len(rows) != 1 {
				t.Fatalf("rows = %d, want 1", len(rows))
			}
			for _, w := range tc.want {
				if rows[0][w[0]] != w[1] {
					t.Fatalf("row = %v, want %s=%s", rows[0], w[0], w[1])
				}
			}
		})
	}
}

func TestCSVDecoderDuplicateHeaders(t *testing.T) {
	rows, order, err := csvDecoder{}.Decode([]byte("id,id\nfirst,second\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(order, []string{"id", "id_1"}) {
		t.Fatalf("order = %v, want [id id_1]", order)
	}
	if rows[0]["id"] != "first" || rows[0]["id_1"] != "second" {
		t.Fatalf("row = %v, both duplicate cells must survive", rows[0])
	}
}

func TestCSVDecoderShortRecordPads(t *testing.T) {
	rows, _, err := csvDecoder{}.Decode([]byte("a,b,c\n1,2\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rows[0]["c"] != "" {
		t.Fatalf("missing trailing cell = %#v, want empty string", rows[0]["c"])
	}
}

func TestCSVDecoderEmptyFile(t *testing.T) {
	rows, order, err := csvDecoder{}.Decode(nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rows != nil || order != nil {
		t.Fatalf("rows = %v, order = %v, want nil", rows, order)
	}
}

func TestCSVDecoderCanDecode(t *testing.T) {
	d := csvDecoder{}
	if !d.CanDecode("data.CSV") || !d.CanDecode("data.tsv") {
		t.Fatal("csv/tsv extensions should be accepted")
	}
	if d.CanDecode("data.json") {
		t.Fatal("json must not be claimed by the csv decoder")
	}
}
