// internal/fs/interfaces.go

package fs

import (
	"bazil.org/fuse/fs"
)

// Directory represents a directory in the mounted tree
type Directory interface {
	fs.Node
	fs.NodeRequestLookuper
	fs.HandleReadDirAller
}

// FileInterface represents a file in the mounted tree; it doubles as its
// own open handle.
type FileInterface interface {
	fs.Node
	fs.NodeOpener
	fs.HandleReader
}

var (
	_ Directory     = (*Dir)(nil)
	_ FileInterface = (*File)(nil)
)
