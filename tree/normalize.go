package tree

import "github.com/yacchi/kasane/relpath"

// Normalize returns a new tree with the same shape as t in which every
// string leaf that looks explicitly relative ("./..." or "../...") has
// been rewritten to an absolute path anchored at baseDir. All other
// leaves pass through unchanged. Neither t nor any of its containers is
// modified. Normalize(nil) returns nil.
func Normalize(t Tree, baseDir string) Tree {
	if t == nil {
		return nil
	}

	dst := make(Tree, len(t))
	for k, v := range t {
		dst[k] = normalizeValue(v, baseDir)
	}
	return dst
}

func normalizeValue(v any, baseDir string) any {
	switch val := v.(type) {
	case map[string]any:
		return Normalize(val, baseDir)
	case []any:
		dst := make([]any, len(val))
		for i, elem := range val {
			dst[i] = normalizeValue(elem, baseDir)
		}
		return dst
	case string:
		return relpath.Rewrite(baseDir, val)
	default:
		return v
	}
}
