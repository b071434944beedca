package codec

import (
	"bytes"
	"fmt"

	"github.com/yacchi/kasane/tree"
	"gopkg.in/yaml.v3"
)

// YAML decodes and encodes YAML documents. The root must be a mapping
// with string keys. Scalars keep the Go types yaml.v3 decodes them to
// (integers arrive as int rather than float64); the tree algorithms
// treat every non-container value as an opaque scalar, so this only
// matters to callers inspecting leaf types.
var YAML Codec = yamlCodec{}

type yamlCodec struct{}

func (yamlCodec) Name() string         { return "yaml" }
func (yamlCodec) Extensions() []string { return []string{".yaml", ".yml"} }

func (yamlCodec) Decode(data []byte) (tree.Tree, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return tree.Tree{}, nil
	}

	var root any
	if err := yaml.Unmarshal(trimmed, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if root == nil {
		return tree.Tree{}, nil
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to parse YAML: root must be a mapping with string keys, got %T", root)
	}

	return obj, nil
}

func (yamlCodec) Encode(t tree.Tree) ([]byte, error) {
	b, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return b, nil
}
