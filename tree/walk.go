package tree

import (
	"sort"
	"strconv"
)

// Walk visits every scalar leaf of t in depth-first order and calls fn
// with the leaf's JSON Pointer and value. Object keys are visited in
// sorted order so traversal is deterministic regardless of map iteration
// order. Empty objects and arrays produce no visits.
func Walk(t Tree, fn func(pointer string, value any)) {
	walkMap("", t, fn)
}

func walkMap(prefix string, data map[string]any, fn func(string, any)) {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := prefix + "/" + Escape(key)

		switch v := data[key].(type) {
		case map[string]any:
			walkMap(path, v, fn)
		case []any:
			walkSlice(path, v, fn)
		default:
			fn(path, v)
		}
	}
}

func walkSlice(prefix string, data []any, fn func(string, any)) {
	for i, value := range data {
		path := prefix + "/" + strconv.Itoa(i)

		switch v := value.(type) {
		case map[string]any:
			walkMap(path, v, fn)
		case []any:
			walkSlice(path, v, fn)
		default:
			fn(path, v)
		}
	}
}
