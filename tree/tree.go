// Package tree defines the configuration tree and the algorithms that
// operate on it: deep copy, deep merge, relative-path normalization,
// JSON Pointer lookup and leaf traversal.
//
// A Tree is the Go shape of one decoded JSON document: objects are
// map[string]any, arrays are []any, and scalars are string, float64, bool
// or nil. The node set is closed because trees originate from JSON
// decoding, so every algorithm in this package is a type switch over
// those three shapes.
package tree

// Tree is one object-rooted configuration document.
type Tree = map[string]any

// Clone creates a deep copy of a tree, recursively copying nested
// objects and arrays. Clone(nil) returns nil.
func Clone(t Tree) Tree {
	if t == nil {
		return nil
	}

	dst := make(Tree, len(t))
	for k, v := range t {
		dst[k] = CloneValue(v)
	}
	return dst
}

// CloneSlice creates a deep copy of an array node, recursively copying
// nested objects and arrays. CloneSlice(nil) returns nil.
func CloneSlice(src []any) []any {
	if src == nil {
		return nil
	}

	dst := make([]any, len(src))
	for i, v := range src {
		dst[i] = CloneValue(v)
	}
	return dst
}

// CloneValue creates a deep copy of any tree node. Objects and arrays
// are copied recursively; scalars are returned as-is.
func CloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return Clone(val)
	case []any:
		return CloneSlice(val)
	default:
		return v
	}
}
