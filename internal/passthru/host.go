package passthru

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

//go:generate mockgen -destination=mock/host.go -package=mock . HostFS,HostFile

// HostFS is the set of host primitives the dispatcher is built on.
// Stat follows symlinks, Lstat does not.
type HostFS interface {
	Stat(path string, st *unix.Stat_t) error
	Lstat(path string, st *unix.Stat_t) error
	Statfs(path string, st *unix.Statfs_t) error
	Open(path string) (HostFile, error)
}

// HostFile is an open host file or directory. *os.File satisfies it.
type HostFile interface {
	io.ReaderAt
	ReadDir(n int) ([]os.DirEntry, error)
	Close() error
}

// OSHost is the HostFS of the running kernel.
type OSHost struct{}

var _ HostFS = OSHost{}

func (OSHost) Stat(path string, st *unix.Stat_t) error {
	return pathError("stat", path, unix.Stat(path, st))
}

func (OSHost) Lstat(path string, st *unix.Stat_t) error {
	return pathError("lstat", path, unix.Lstat(path, st))
}

func (OSHost) Statfs(path string, st *unix.Statfs_t) error {
	return pathError("statfs", path, unix.Statfs(path, st))
}

func (OSHost) Open(path string) (HostFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func pathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &os.PathError{Op: op, Path: path, Err: err}
}
