package kasane

import "fmt"

// InvalidArgumentError is returned when a constructor or operation is
// given an argument it cannot work with, such as a nil default tree or
// a malformed glob pattern.
type InvalidArgumentError struct {
	Reason string
	Err    error
}

func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid argument: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// FileNotFoundError is returned when a load target does not exist after
// resolution against the store's working directory. It unwraps to the
// underlying fs.ErrNotExist chain.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Err
}

// ParseError is returned when file contents cannot be decoded into an
// object-rooted configuration tree.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
