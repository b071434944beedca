package kasane

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yacchi/kasane/codec"
	"github.com/yacchi/kasane/relpath"
	"github.com/yacchi/kasane/tree"
)

// Transform rewrites a whole configuration tree. It runs once per
// Load/Merge invocation, receives the tree after relative paths have
// been rewritten, and must return a complete replacement tree (the
// result is used as-is, not merged with its input). A nil result is
// treated as an empty tree.
type Transform func(tree.Tree) tree.Tree

// subscriber wraps a callback function with a unique ID for reliable
// unsubscription.
type subscriber struct {
	id uint64
	fn func(tree.Tree)
}

// StoreOption is a functional option for configuring Store creation.
type StoreOption func(*storeOptions)

// storeOptions holds the options for the constructors.
type storeOptions struct {
	arrayMode  tree.ArrayMode
	workDir    string
	hasWorkDir bool
	transform  Transform
}

// WithArrayMode fixes the array merge policy for the store's lifetime.
// Every array encountered during every merge follows it. The default is
// tree.ArrayConcat.
func WithArrayMode(mode tree.ArrayMode) StoreOption {
	return func(o *storeOptions) {
		o.arrayMode = mode
	}
}

// WithWorkDir sets the directory that anchors explicitly relative load
// paths ("./..." or "../..."). The default is the process working
// directory at construction time.
func WithWorkDir(dir string) StoreOption {
	return func(o *storeOptions) {
		o.workDir = dir
		o.hasWorkDir = true
	}
}

// WithDefaultTransform installs a transform that is applied to the
// initial FromFile load and to every Reset re-load, so resets restore
// the same shape the store started with. Ordinary Load and Merge calls
// are not affected; they take their own per-call WithTransform.
func WithDefaultTransform(fn Transform) StoreOption {
	return func(o *storeOptions) {
		o.transform = fn
	}
}

// MergeOption is a functional option for a single Load or Merge call.
type MergeOption func(*mergeOptions)

// mergeOptions holds the options for Load and Merge.
type mergeOptions struct {
	sourceDir string
	transform Transform
}

// WithSourceDir sets the directory against which explicitly relative
// string values in the merged tree are rewritten. It applies to Merge
// only; Load always uses the directory of the loaded file.
func WithSourceDir(dir string) MergeOption {
	return func(o *mergeOptions) {
		o.sourceDir = dir
	}
}

// WithTransform applies a transform to this call's tree after path
// rewriting and before merging. See Transform for the contract.
func WithTransform(fn Transform) MergeOption {
	return func(o *mergeOptions) {
		o.transform = fn
	}
}

// Store holds one current configuration tree and builds it up through a
// sequence of load and merge operations. The current tree is always a
// well-formed object root, never nil.
//
// A Store is not safe for concurrent use. Operations run synchronously
// to completion, Get hands out a live reference, and nothing inside the
// store synchronizes. Callers that share a Store across goroutines must
// provide their own locking.
type Store struct {
	// current is the materialized configuration tree.
	current tree.Tree

	// defaultTree and defaultPath remember the construction default for
	// Reset. At most one of them is set.
	defaultTree tree.Tree
	defaultPath string

	// transform is the construction-time transform, reused by Reset.
	transform Transform

	// arrayMode is the merge policy for arrays, fixed at construction.
	arrayMode tree.ArrayMode

	// workDir anchors explicitly relative load paths.
	workDir string

	// subscribers holds callbacks for configuration changes.
	subscribers []subscriber

	// nextSubID is the next subscriber ID to assign.
	nextSubID uint64
}

// New creates an empty Store with no remembered default. Reset on such
// a store simply clears it.
//
// Example:
//
//	store := kasane.New(kasane.WithArrayMode(tree.ArrayReplace))
//	if err := store.Load("./config.json"); err != nil {
//	  log.Fatal(err)
//	}
func New(opts ...StoreOption) *Store {
	return newStore(opts)
}

// FromTree creates a Store whose current tree is a deep copy of t, and
// remembers its own copy of t as the default that Reset restores. A nil
// tree is rejected with InvalidArgumentError.
func FromTree(t tree.Tree, opts ...StoreOption) (*Store, error) {
	if t == nil {
		return nil, &InvalidArgumentError{Reason: "default tree must not be nil"}
	}

	s := newStore(opts)
	s.current = tree.Clone(t)
	s.defaultTree = tree.Clone(t)
	return s, nil
}

// FromFile creates a Store that immediately loads path and remembers it
// as the default. Reset re-reads the file from disk, so external edits
// are picked up. The construction transform, if any, shapes both the
// initial load and every reset. An empty path is rejected with
// InvalidArgumentError; a missing or undecodable file fails with the
// same errors Load would return.
func FromFile(path string, opts ...StoreOption) (*Store, error) {
	if path == "" {
		return nil, &InvalidArgumentError{Reason: "default path must not be empty"}
	}

	s := newStore(opts)
	s.defaultPath = path
	if err := s.load(path, s.transform); err != nil {
		return nil, err
	}
	return s, nil
}

func newStore(opts []StoreOption) *Store {
	var options storeOptions
	for _, opt := range opts {
		opt(&options)
	}

	workDir := options.workDir
	if !options.hasWorkDir {
		if wd, err := os.Getwd(); err == nil {
			workDir = wd
		}
	}

	return &Store{
		current:   tree.Tree{},
		transform: options.transform,
		arrayMode: options.arrayMode,
		workDir:   workDir,
		nextSubID: 1,
	}
}

// ArrayMode returns the store's fixed array merge policy.
func (s *Store) ArrayMode() tree.ArrayMode {
	return s.arrayMode
}

// WorkDir returns the directory that anchors explicitly relative load
// paths.
func (s *Store) WorkDir() string {
	return s.workDir
}

// Get returns the current configuration tree by reference. The returned
// map aliases the store's internal state: mutations through it are
// visible to every later operation and to other Get callers. Use
// Snapshot for an isolated copy.
func (s *Store) Get() tree.Tree {
	return s.current
}

// Snapshot returns a deep copy of the current configuration tree,
// isolated from the store and from later operations.
func (s *Store) Snapshot() tree.Tree {
	return tree.Clone(s.current)
}

// Set replaces the current tree wholesale, without validation or
// merging. The store takes ownership of t as-is (no copy), mirroring
// the aliasing contract of Get. A nil tree is replaced by an empty one
// so the current tree stays object-rooted.
func (s *Store) Set(t tree.Tree) {
	if t == nil {
		t = tree.Tree{}
	}
	s.current = t
	s.notify()
}

// Clear replaces the current tree with an empty one. The remembered
// default is untouched; Reset still restores it.
func (s *Store) Clear() {
	s.current = tree.Tree{}
	s.notify()
}

// Reset clears the store and then restores the construction default:
// a path default is re-loaded from disk (applying the construction
// transform), a tree default is restored as a fresh deep copy, and with
// no default the store stays empty.
//
// Each state change notifies subscribers, so a reset produces one
// notification for the clear and one for the restore. If the re-load
// fails the store is left cleared and the error is returned, with the
// prior content already discarded.
func (s *Store) Reset() error {
	s.Clear()

	switch {
	case s.defaultPath != "":
		return s.load(s.defaultPath, s.transform)
	case s.defaultTree != nil:
		s.current = tree.Clone(s.defaultTree)
		s.notify()
	}
	return nil
}

// Load reads, decodes and merges one configuration file.
//
// A path beginning with "./" or "../" is anchored to the store's
// working directory; any other path (absolute or bare) goes to the
// operating system untouched. A missing file fails with
// FileNotFoundError, undecodable content with ParseError, and in both
// cases the current tree is left completely unmodified.
//
// The decoded tree is normalized against the directory of the resolved
// file, so relative path values inside the document become absolute
// paths next to their source. WithSourceDir is ignored by Load; a
// WithTransform option applies after normalization.
//
// Example:
//
//	store := kasane.New()
//	if err := store.Load("./conf/base.json"); err != nil {
//	  log.Fatal(err)
//	}
func (s *Store) Load(path string, opts ...MergeOption) error {
	var options mergeOptions
	for _, opt := range opts {
		opt(&options)
	}
	return s.load(path, options.transform)
}

// LoadGlob loads every file matching pattern, in sorted path order.
// Patterns support doublestar syntax ("conf.d/**/*.json"). An
// explicitly relative pattern is anchored to the working directory like
// a Load path. Zero matches is a no-op, a malformed pattern fails with
// InvalidArgumentError, and the first failing file stops the sequence
// with files merged so far retained.
func (s *Store) LoadGlob(pattern string, opts ...MergeOption) error {
	var options mergeOptions
	for _, opt := range opts {
		opt(&options)
	}

	resolved := pattern
	if relpath.IsRelative(pattern) {
		resolved = relpath.Resolve(s.workDir, pattern)
	}

	matches, err := doublestar.FilepathGlob(resolved, doublestar.WithFilesOnly())
	if err != nil {
		return &InvalidArgumentError{Reason: fmt.Sprintf("invalid glob pattern %q", pattern), Err: err}
	}
	sort.Strings(matches)

	for _, match := range matches {
		if err := s.load(match, options.transform); err != nil {
			return err
		}
	}
	return nil
}

// Merge runs a tree through the merge pipeline: relative path values
// are rewritten against the source directory (empty by default, see
// WithSourceDir), the optional transform replaces the result, and the
// outcome is deep-merged into the current tree under the store's array
// mode. Neither t nor its containers are retained or modified.
//
// Example:
//
//	store.Merge(tree.Tree{"debug": true})
//	store.Merge(overrides, kasane.WithSourceDir("/etc/app"))
func (s *Store) Merge(t tree.Tree, opts ...MergeOption) {
	var options mergeOptions
	for _, opt := range opts {
		opt(&options)
	}
	s.merge(t, options.sourceDir, options.transform)
}

// Subscribe registers a callback invoked synchronously after every
// state change (Set, Clear, Reset, Load, LoadGlob, Merge), with the
// then-current tree. Returns an unsubscribe function that is safe to
// call multiple times.
//
// Example:
//
//	unsubscribe := store.Subscribe(func(t tree.Tree) {
//	  log.Printf("config now has %d top-level keys", len(t))
//	})
//	defer unsubscribe()
func (s *Store) Subscribe(fn func(tree.Tree)) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// load resolves, reads, decodes and merges one file. The directory of
// the resolved path becomes the base for rewriting relative values in
// the document.
func (s *Store) load(path string, transform Transform) error {
	resolved := path
	if relpath.IsRelative(path) {
		resolved = relpath.Resolve(s.workDir, path)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileNotFoundError{Path: resolved, Err: err}
		}
		return fmt.Errorf("failed to read %s: %w", resolved, err)
	}

	doc, err := codec.ForPath(resolved).Decode(data)
	if err != nil {
		return &ParseError{Path: resolved, Err: err}
	}

	s.merge(doc, filepath.Dir(resolved), transform)
	return nil
}

// merge is the pipeline shared by Load and Merge: normalize, transform,
// deep merge, notify.
func (s *Store) merge(t tree.Tree, sourceDir string, transform Transform) {
	normalized := tree.Normalize(t, sourceDir)
	if transform != nil {
		normalized = transform(normalized)
	}
	if normalized == nil {
		normalized = tree.Tree{}
	}

	s.current = tree.Merge(s.current, normalized, s.arrayMode)
	s.notify()
}

// notify calls all registered subscribers with the current tree. The
// subscriber list is copied first so callbacks may unsubscribe during
// notification.
func (s *Store) notify() {
	subscribers := append([]subscriber(nil), s.subscribers...)
	for _, sub := range subscribers {
		sub.fn(s.current)
	}
}
