package tree

import (
	"strconv"
	"strings"
)

// Escape escapes special characters in a key for use in a JSON Pointer
// (RFC 6901): "~" becomes "~0" and "/" becomes "~1".
func Escape(key string) string {
	// Order matters: escape ~ first, then /
	key = strings.ReplaceAll(key, "~", "~0")
	key = strings.ReplaceAll(key, "/", "~1")
	return key
}

// Unescape reverses the escaping applied by Escape: "~1" becomes "/"
// and "~0" becomes "~".
func Unescape(key string) string {
	// Order matters: unescape / first, then ~
	key = strings.ReplaceAll(key, "~1", "/")
	key = strings.ReplaceAll(key, "~0", "~")
	return key
}

// At retrieves the value at the given JSON Pointer. The empty pointer
// refers to the whole tree. Array elements are addressed by decimal
// index. Returns the value and true if found, or nil and false when the
// pointer is malformed or does not resolve.
//
// Example:
//
//	data := tree.Tree{
//	    "server": map[string]any{"host": "localhost"},
//	}
//	value, ok := tree.At(data, "/server/host") // "localhost", true
//	value, ok = tree.At(data, "/server/port")  // nil, false
func At(t Tree, pointer string) (any, bool) {
	if pointer == "" {
		return t, true
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, false
	}

	var current any = t
	for _, part := range strings.Split(pointer[1:], "/") {
		key := Unescape(part)

		switch v := current.(type) {
		case map[string]any:
			val, ok := v[key]
			if !ok {
				return nil, false
			}
			current = val

		case []any:
			index, err := strconv.Atoi(key)
			if err != nil || index < 0 || index >= len(v) {
				return nil, false
			}
			current = v[index]

		default:
			return nil, false
		}
	}

	return current, true
}
