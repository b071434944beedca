// Package codec converts configuration documents between raw bytes and
// configuration trees.
//
// JSON is the primary and default format. JSONC (JSON with comments and
// trailing commas) and YAML are supported for files that carry the
// matching extension. Every codec enforces the same root rule: a decoded
// document must be a single object, because stores only merge
// object-rooted trees. Empty input and a bare null decode to an empty
// tree.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yacchi/kasane/tree"
)

// Codec converts between document bytes and configuration trees.
type Codec interface {
	// Name identifies the codec for flags and error messages.
	Name() string
	// Extensions lists the file extensions the codec claims, including
	// the leading dot.
	Extensions() []string
	// Decode parses data into an object-rooted tree.
	Decode(data []byte) (tree.Tree, error)
	// Encode renders a tree back to document bytes.
	Encode(t tree.Tree) ([]byte, error)
}

// codecs in dispatch order for ForPath.
var codecs = []Codec{JSON, JSONC, YAML}

// ForPath selects a codec by the file extension of path. Unknown and
// missing extensions fall back to JSON.
func ForPath(path string) Codec {
	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range codecs {
		for _, e := range c.Extensions() {
			if e == ext {
				return c
			}
		}
	}
	return JSON
}

// ByName resolves a codec from a format name such as a --format flag
// value. Recognized names are "json", "jsonc", "yaml" and "yml".
func ByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "jsonc":
		return JSONC, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return nil, fmt.Errorf("unknown format %q (want \"json\", \"jsonc\" or \"yaml\")", name)
}
