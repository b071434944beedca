package codec

import (
	"reflect"
	"testing"

	"github.com/yacchi/kasane/tree"
)

func TestYAMLDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    tree.Tree
		wantErr bool
	}{
		{
			name: "simple mapping",
			input: `
host: localhost
port: 8080
`,
			want: tree.Tree{"host": "localhost", "port": 8080},
		},
		{
			name: "nested mapping and sequence",
			input: `
server:
  host: localhost
tags:
  - a
  - b
`,
			want: tree.Tree{
				"server": map[string]any{"host": "localhost"},
				"tags":   []any{"a", "b"},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  tree.Tree{},
		},
		{
			name:  "null document",
			input: "null",
			want:  tree.Tree{},
		},
		{
			name:    "sequence root rejected",
			input:   "- a\n- b\n",
			wantErr: true,
		},
		{
			name:    "scalar root rejected",
			input:   "just a string",
			wantErr: true,
		},
		{
			name:    "invalid YAML",
			input:   "a: [unclosed",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YAML.Decode([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestYAMLEncodeRoundTrip(t *testing.T) {
	input := tree.Tree{
		"server": map[string]any{"host": "localhost", "port": 8080},
		"tags":   []any{"a", "b"},
	}

	b, err := YAML.Encode(input)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, err := YAML.Decode(b)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !reflect.DeepEqual(got, input) {
		t.Errorf("round trip = %v, want %v", got, input)
	}
}
