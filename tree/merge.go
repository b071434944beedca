package tree

import "fmt"

// ArrayMode selects how Merge combines two arrays occupying the same key.
// The mode is fixed per store and applied uniformly to every array seen
// during every merge. The zero value is ArrayConcat.
type ArrayMode int

const (
	// ArrayConcat keeps the base elements and appends the incoming
	// elements after them, preserving order, without deduplication.
	ArrayConcat ArrayMode = iota
	// ArrayReplace discards the base array in favor of the incoming one.
	ArrayReplace
)

// String returns "concat" or "replace".
func (m ArrayMode) String() string {
	if m == ArrayReplace {
		return "replace"
	}
	return "concat"
}

// ParseArrayMode maps the names "concat" and "replace" back to their
// modes, for flag and configuration values.
func ParseArrayMode(s string) (ArrayMode, error) {
	switch s {
	case "concat":
		return ArrayConcat, nil
	case "replace":
		return ArrayReplace, nil
	default:
		return ArrayConcat, fmt.Errorf("unknown array mode %q (want \"concat\" or \"replace\")", s)
	}
}

// Merge combines base and incoming into a new tree. Neither input is
// modified, and the result shares no containers with either side.
//
// Objects merge key by key: keys present on both sides merge
// recursively, one-sided keys are deep copied into the result. Two
// arrays combine according to mode. Every other pairing, a scalar on
// either side or a container type mismatch, resolves in favor of the
// incoming value. This is the only place array policy is decided.
func Merge(base, incoming Tree, mode ArrayMode) Tree {
	result := Clone(base)
	if result == nil {
		result = make(Tree, len(incoming))
	}

	for key, incomingValue := range incoming {
		baseValue, exists := result[key]
		if !exists {
			result[key] = CloneValue(incomingValue)
			continue
		}
		result[key] = mergeValue(baseValue, incomingValue, mode)
	}
	return result
}

// mergeValue combines one base value with one incoming value. The base
// side already belongs to the result tree (it came out of Clone), so its
// containers can be extended in place; incoming data is always deep
// copied before it enters the result.
func mergeValue(base, incoming any, mode ArrayMode) any {
	baseMap, baseIsMap := base.(map[string]any)
	incomingMap, incomingIsMap := incoming.(map[string]any)

	if baseIsMap && incomingIsMap {
		for key, incomingValue := range incomingMap {
			baseValue, exists := baseMap[key]
			if !exists {
				baseMap[key] = CloneValue(incomingValue)
				continue
			}
			baseMap[key] = mergeValue(baseValue, incomingValue, mode)
		}
		return baseMap
	}

	baseSlice, baseIsSlice := base.([]any)
	incomingSlice, incomingIsSlice := incoming.([]any)

	if baseIsSlice && incomingIsSlice && mode == ArrayConcat {
		merged := make([]any, 0, len(baseSlice)+len(incomingSlice))
		merged = append(merged, baseSlice...)
		for _, v := range incomingSlice {
			merged = append(merged, CloneValue(v))
		}
		return merged
	}

	// Scalar on either side, container mismatch, or ArrayReplace:
	// the incoming value wins outright.
	return CloneValue(incoming)
}
