package tree

import (
	"reflect"
	"testing"
)

func TestClone(t *testing.T) {
	original := Tree{
		"name": "app",
		"server": map[string]any{
			"port": float64(8080),
		},
		"tags": []any{"a", "b"},
	}

	copied := Clone(original)

	// Modify copy
	copied["name"] = "other"
	copied["server"].(map[string]any)["port"] = float64(9090)
	copied["tags"].([]any)[0] = "modified"

	// Original should be unchanged
	if original["name"] != "app" {
		t.Error("original[name] was modified")
	}
	if original["server"].(map[string]any)["port"] != float64(8080) {
		t.Error("original[server][port] was modified")
	}
	if original["tags"].([]any)[0] != "a" {
		t.Error("original[tags][0] was modified")
	}
}

func TestClone_Nil(t *testing.T) {
	if Clone(nil) != nil {
		t.Error("Clone(nil) should return nil")
	}
}

func TestCloneSlice(t *testing.T) {
	original := []any{
		"a",
		map[string]any{"key": "value"},
		[]any{float64(1), float64(2)},
	}

	copied := CloneSlice(original)

	copied[0] = "modified"
	copied[1].(map[string]any)["key"] = "modified"
	copied[2].([]any)[0] = float64(100)

	if original[0] != "a" {
		t.Error("original[0] was modified")
	}
	if original[1].(map[string]any)["key"] != "value" {
		t.Error("original[1][key] was modified")
	}
	if original[2].([]any)[0] != float64(1) {
		t.Error("original[2][0] was modified")
	}
}

func TestCloneSlice_Nil(t *testing.T) {
	if CloneSlice(nil) != nil {
		t.Error("CloneSlice(nil) should return nil")
	}
}

func TestCloneValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"string", "hello"},
		{"number", float64(42)},
		{"bool", true},
		{"object", map[string]any{"a": "b"}},
		{"array", []any{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CloneValue(tt.input)
			if !reflect.DeepEqual(got, tt.input) {
				t.Errorf("CloneValue(%v) = %v, want equal value", tt.input, got)
			}
		})
	}
}
