package passthru

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound indicates the handle, name or child path cannot be
	// resolved within the registry or does not exist on the host.
	ErrNotFound = errors.New("not found")

	// ErrIO indicates any other host filesystem failure.
	ErrIO = errors.New("i/o error")

	errInvalidName = errors.New("invalid name")
)

// Error wraps a failed operation with the relative path it targeted.
// Kind is always ErrNotFound or ErrIO; Err is the host error, if any.
type Error struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the host error to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func notFound(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Kind: ErrNotFound, Err: err}
}

func ioError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Kind: ErrIO, Err: err}
}

// hostError classifies a host failure: a missing path is NotFound,
// everything else is IOError.
func hostError(op, path string, err error) *Error {
	if errors.Is(err, fs.ErrNotExist) {
		return notFound(op, path, err)
	}
	return ioError(op, path, err)
}

// IsNotFound reports whether err is a NotFound failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Operation names used in errors and log lines.
const (
	OpGetattr = "getattr"
	OpLookup  = "lookup"
	OpReadDir = "readdir"
	OpRead    = "read"
	OpStatfs  = "statfs"
)
