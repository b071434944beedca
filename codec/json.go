package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"github.com/yacchi/kasane/tree"
)

// JSON decodes and encodes plain JSON documents. It is the default codec.
var JSON Codec = jsonCodec{}

// JSONC decodes JSON with comments and trailing commas, as found in
// editor-style configuration files. Encoding emits plain JSON.
var JSONC Codec = jsoncCodec{}

type jsonCodec struct{}

func (jsonCodec) Name() string         { return "json" }
func (jsonCodec) Extensions() []string { return []string{".json"} }

func (jsonCodec) Decode(data []byte) (tree.Tree, error) {
	return decodeJSON(data)
}

func (jsonCodec) Encode(t tree.Tree) ([]byte, error) {
	return encodeJSON(t)
}

type jsoncCodec struct{}

func (jsoncCodec) Name() string         { return "jsonc" }
func (jsoncCodec) Extensions() []string { return []string{".jsonc"} }

func (jsoncCodec) Decode(data []byte) (tree.Tree, error) {
	// Comments and trailing commas are rewritten to whitespace first,
	// leaving standard JSON.
	return decodeJSON(jsonc.ToJSON(data))
}

func (jsoncCodec) Encode(t tree.Tree) ([]byte, error) {
	return encodeJSON(t)
}

// decodeJSON parses JSON bytes into a tree.
//
// The root value must be a JSON object. Empty/whitespace input and a
// bare null are treated as an empty object.
func decodeJSON(data []byte) (tree.Tree, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return tree.Tree{}, nil
	}

	var root any
	if err := json.Unmarshal(trimmed, &root); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if root == nil {
		return tree.Tree{}, nil
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to parse JSON: root must be an object, got %T", root)
	}

	return obj, nil
}

func encodeJSON(t tree.Tree) ([]byte, error) {
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(b, '\n'), nil
}
