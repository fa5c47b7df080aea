package fs

import (
	"context"
	"os"
	"syscall"

	"passthrufs/internal/logging"
	"passthrufs/internal/passthru"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"
)

var (
	fileLogger = logging.GetLogger().WithPrefix("file")
)

// File is a non-directory entry of the source tree. It is its own open
// handle: no host descriptor is kept between reads.
type File struct {
	fs     *PassthruFS
	handle passthru.Handle
}

// Attr implements the Node interface, returning the file's attributes.
func (f *File) Attr(_ context.Context, a *fuse.Attr) error {
	fileLogger.Trace("Getting attributes for file handle %d", f.handle)

	attr, err := f.fs.core.GetAttr(f.handle)
	if err != nil {
		fileLogger.Debug("getattr %d: %v", f.handle, err)
		return ToFuseError(err)
	}
	fillAttr(a, attr)
	return nil
}

// Open implements the NodeOpener interface. Only read access is allowed.
func (f *File) Open(_ context.Context, req *fuse.OpenRequest, resp *fuse.OpenResponse) (fusefs.Handle, error) {
	flags := int(req.Flags)
	fileLogger.Debug("Opening file handle %d with flags %v", f.handle, req.Flags)

	if flags&os.O_WRONLY != 0 || flags&os.O_RDWR != 0 {
		fileLogger.Warn("Attempted write access to read-only file handle %d", f.handle)
		return nil, syscall.EROFS
	}

	// Contents are never cached; every read goes to the host.
	resp.Flags |= fuse.OpenDirectIO
	return f, nil
}

// Read implements the HandleReader interface, reading data from the host file.
func (f *File) Read(_ context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	fileLogger.Trace("Reading %d bytes from file handle %d at offset %d",
		req.Size, f.handle, req.Offset)

	data, err := f.fs.core.Read(f.handle, req.Offset, req.Size)
	if err != nil {
		fileLogger.Error("Failed to read from file: %v", err)
		return ToFuseError(err)
	}

	resp.Data = data
	fileLogger.Trace("Successfully read %d bytes", len(data))
	return nil
}
