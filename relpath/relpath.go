// Package relpath classifies and resolves explicitly relative path strings
// found in configuration values.
//
// A string is considered explicitly relative only when it begins with "./"
// or "../". Anything else (absolute paths, bare file names, URLs, dotfiles
// such as ".hidden") is left alone by Rewrite. The check is a literal prefix
// match, so it is cheap enough to run against every string leaf of a
// configuration tree.
package relpath

import "path/filepath"

// IsRelative reports whether s begins with "./" or "../".
//
// The match is exact: the first byte must be '.', followed either by '/'
// or by "./". Strings like ".hidden", "..", "." or "x/./y" are not
// relative in this sense.
func IsRelative(s string) bool {
	if len(s) >= 2 && s[0] == '.' && s[1] == '/' {
		return true
	}
	if len(s) >= 3 && s[0] == '.' && s[1] == '.' && s[2] == '/' {
		return true
	}
	return false
}

// Resolve joins base and rel and normalizes the result, collapsing "."
// and ".." segments and redundant separators. It is pure string algebra:
// the filesystem is never consulted and the result is not required to
// exist.
func Resolve(base, rel string) string {
	return filepath.Join(base, rel)
}

// Rewrite returns Resolve(base, s) when s is explicitly relative, and s
// unchanged otherwise. Rewriting is idempotent: a resolved path no longer
// matches the relative prefix, so a second pass returns it as-is.
func Rewrite(base, s string) string {
	if IsRelative(s) {
		return Resolve(base, s)
	}
	return s
}
