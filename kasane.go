// Package kasane provides layered JSON configuration management.
//
// The name comes from 重ね (kasane), the Japanese word for layered
// garments, where each layer shows through the ones above it.
// Configuration documents stack the same way: later documents are
// deep-merged over earlier ones, and every value in the result came
// from the topmost document that set it.
//
// Key features:
//   - Deep merge with a per-store array policy (concatenate or replace)
//   - Relative path values ("./certs/key.pem") rewritten against the
//     directory of the file that declared them
//   - Explicit constructors for the three starting states: empty, from
//     a tree, from a file
//   - Reset back to the construction default, re-reading file defaults
//     from disk
//   - Change notification via subscriptions
//
// JSON is the primary format; JSONC and YAML files load through the
// same pipeline. See the codec package for format handling and the
// tree package for the merge algorithms themselves.
package kasane

import "github.com/yacchi/kasane/tree"

// Tree is an alias for tree.Tree, the object-rooted configuration
// document all store operations work on.
type Tree = tree.Tree

// ArrayMode is an alias for tree.ArrayMode, the per-store array merge
// policy.
type ArrayMode = tree.ArrayMode

// Array merge policies, re-exported for callers that only import the
// root package.
const (
	// ArrayConcat appends incoming array elements after base elements.
	ArrayConcat = tree.ArrayConcat

	// ArrayReplace discards base arrays in favor of incoming ones.
	ArrayReplace = tree.ArrayReplace
)
