package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yacchi/kasane"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// ── merge ─────────────────────────────────────────────────────────────────────

// TestMergeCommand verifies that two files merge in argument order with
// objects merged recursively and later scalars winning.
func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.json", `{"name": "app", "server": {"host": "localhost", "port": 8080}}`)
	over := writeFile(t, dir, "over.json", `{"server": {"port": 9090}, "debug": true}`)

	out, err := runCommand(t, "merge", base, over)
	require.NoError(t, err)

	var merged map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &merged))

	assert.Equal(t, "app", merged["name"])
	assert.Equal(t, true, merged["debug"])
	server, ok := merged["server"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "localhost", server["host"])
	assert.Equal(t, float64(9090), server["port"])
}

// TestMergeCommand_ArrayModes verifies that --array-mode switches the
// merge between concatenation and wholesale replacement.
func TestMergeCommand_ArrayModes(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.json", `{"plugins": ["core"]}`)
	over := writeFile(t, dir, "over.json", `{"plugins": ["extra"]}`)

	out, err := runCommand(t, "merge", base, over)
	require.NoError(t, err)
	var merged map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &merged))
	assert.Equal(t, []any{"core", "extra"}, merged["plugins"])

	out, err = runCommand(t, "merge", "--array-mode", "replace", base, over)
	require.NoError(t, err)
	merged = nil
	require.NoError(t, json.Unmarshal([]byte(out), &merged))
	assert.Equal(t, []any{"extra"}, merged["plugins"])
}

// TestMergeCommand_WorkdirAnchorsRelativeArguments verifies that
// ./-prefixed file arguments resolve against --workdir rather than the
// process working directory.
func TestMergeCommand_WorkdirAnchorsRelativeArguments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.json", `{"name": "app"}`)

	out, err := runCommand(t, "merge", "--workdir", dir, "./base.json")
	require.NoError(t, err)

	var merged map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &merged))
	assert.Equal(t, "app", merged["name"])
}

// TestMergeCommand_RewritesRelativePathValues verifies that string
// values starting with ./ come out rewritten against the directory of
// the file that declared them.
func TestMergeCommand_RewritesRelativePathValues(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "conf.d/app.json", `{"plugin": "./mod.so"}`)

	out, err := runCommand(t, "merge", cfg)
	require.NoError(t, err)

	var merged map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &merged))
	assert.Equal(t, filepath.Join(dir, "conf.d", "mod.so"), merged["plugin"])
}

// TestMergeCommand_YAMLOutput verifies --format yaml renders the merged
// document as YAML.
func TestMergeCommand_YAMLOutput(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.json", `{"server": {"port": 8080}}`)

	out, err := runCommand(t, "merge", "--format", "yaml", base)
	require.NoError(t, err)

	var merged map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &merged))
	server, ok := merged["server"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 8080, server["port"])
}

// TestMergeCommand_OutFile verifies --out writes the document to a file
// and leaves stdout empty.
func TestMergeCommand_OutFile(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.json", `{"name": "app"}`)
	outPath := filepath.Join(dir, "merged.json")

	out, err := runCommand(t, "merge", "--out", outPath, base)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var merged map[string]any
	require.NoError(t, json.Unmarshal(data, &merged))
	assert.Equal(t, "app", merged["name"])
}

// TestMergeCommand_GlobArgument verifies that a quoted glob argument
// expands to its matches sorted by path before merging.
func TestMergeCommand_GlobArgument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "10-a.json", `{"order": ["a"]}`)
	writeFile(t, dir, "20-b.json", `{"order": ["b"]}`)

	out, err := runCommand(t, "merge", filepath.Join(dir, "*.json"))
	require.NoError(t, err)

	var merged map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &merged))
	assert.Equal(t, []any{"a", "b"}, merged["order"])
}

// TestMergeCommand_MissingFile verifies that a nonexistent file surfaces
// the library's typed error through the command.
func TestMergeCommand_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, "merge", filepath.Join(dir, "nope.json"))
	require.Error(t, err)
	var notFound *kasane.FileNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

// ── get ───────────────────────────────────────────────────────────────────────

// TestGetCommand_Scalar verifies that a scalar value prints bare.
func TestGetCommand_Scalar(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.json", `{"server": {"host": "localhost", "port": 8080}}`)
	over := writeFile(t, dir, "over.json", `{"server": {"port": 9090}}`)

	out, err := runCommand(t, "get", "/server/port", base, over)
	require.NoError(t, err)
	assert.Equal(t, "9090\n", out)
}

// TestGetCommand_Container verifies that objects print as JSON.
func TestGetCommand_Container(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.json", `{"server": {"host": "localhost"}}`)

	out, err := runCommand(t, "get", "/server", base)
	require.NoError(t, err)

	var value map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &value))
	assert.Equal(t, "localhost", value["host"])
}

// TestGetCommand_Null verifies that a JSON null prints as "null".
func TestGetCommand_Null(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.json", `{"token": null}`)

	out, err := runCommand(t, "get", "/token", base)
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)
}

// TestGetCommand_MissingPointer verifies the error for a pointer that
// matches nothing in the merged document.
func TestGetCommand_MissingPointer(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.json", `{"name": "app"}`)

	_, err := runCommand(t, "get", "/server/port", base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// ── paths ─────────────────────────────────────────────────────────────────────

// TestPathsCommand verifies the dry-run table lists each relative path
// value with its resolved absolute form.
func TestPathsCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "conf.d/app.json", `{"plugin": "./mod.so", "name": "app", "extra": "../shared/lib.so"}`)

	out, err := runCommand(t, "paths", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "/plugin")
	assert.Contains(t, out, "./mod.so")
	assert.Contains(t, out, filepath.Join(dir, "conf.d", "mod.so"))
	assert.Contains(t, out, filepath.Join(dir, "shared", "lib.so"))
	assert.NotContains(t, out, "/name")
}

// TestPathsCommand_NoRelativeValues verifies the fallback message when
// the document contains nothing to rewrite.
func TestPathsCommand_NoRelativeValues(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "app.json", `{"name": "app", "path": "/absolute/lib.so"}`)

	out, err := runCommand(t, "paths", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "no relative path values")
}
