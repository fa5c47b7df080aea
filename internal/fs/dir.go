package fs

import (
	"context"

	"passthrufs/internal/logging"
	"passthrufs/internal/passthru"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"
)

var (
	dirLogger = logging.GetLogger().WithPrefix("dir")
)

// Dir is a directory of the source tree, the root included.
type Dir struct {
	fs     *PassthruFS
	handle passthru.Handle
}

// Attr implements the Node interface, returning directory attributes.
func (d *Dir) Attr(_ context.Context, a *fuse.Attr) error {
	dirLogger.Trace("Getting attributes for directory handle %d", d.handle)

	attr, err := d.fs.core.GetAttr(d.handle)
	if err != nil {
		dirLogger.Debug("getattr %d: %v", d.handle, err)
		return ToFuseError(err)
	}
	fillAttr(a, attr)
	return nil
}

// Lookup implements the NodeRequestLookuper interface, finding a child node.
func (d *Dir) Lookup(_ context.Context, req *fuse.LookupRequest, resp *fuse.LookupResponse) (fusefs.Node, error) {
	dirLogger.Debug("Looking up %q in directory handle %d", req.Name, d.handle)

	attr, err := d.fs.core.Lookup(d.handle, req.Name)
	if err != nil {
		dirLogger.Debug("Path not found: %v", err)
		return nil, ToFuseError(err)
	}

	resp.EntryValid = passthru.TTL
	if attr.IsDir() {
		return &Dir{fs: d.fs, handle: attr.Handle}, nil
	}
	return &File{fs: d.fs, handle: attr.Handle}, nil
}

// ReadDirAll implements the HandleReadDirAller interface, listing directory contents.
func (d *Dir) ReadDirAll(_ context.Context) ([]fuse.Dirent, error) {
	dirLogger.Debug("Reading directory contents: handle %d", d.handle)

	entries, err := d.fs.core.ReadDirAll(d.handle)
	if err != nil {
		dirLogger.Warn("readdir %d: %v", d.handle, err)
		return nil, ToFuseError(err)
	}

	dirents := make([]fuse.Dirent, 0, len(entries))
	for _, e := range entries {
		dirents = append(dirents, fuse.Dirent{
			Inode: e.Inode,
			Type:  direntType(e.Kind),
			Name:  e.Name,
		})
	}

	dirLogger.Debug("Directory handle %d contains %d entries", d.handle, len(dirents))
	return dirents, nil
}

func direntType(k passthru.Kind) fuse.DirentType {
	if k == passthru.KindDirectory {
		return fuse.DT_Dir
	}
	return fuse.DT_File
}

// fillAttr copies a dispatcher record into a FUSE attribute reply.
func fillAttr(a *fuse.Attr, attr passthru.Attr) {
	a.Valid = passthru.TTL
	a.Inode = uint64(attr.Handle)
	a.Size = attr.Size
	a.Blocks = attr.Blocks
	a.BlockSize = attr.BlockSize
	a.Atime = attr.Atime
	a.Mtime = attr.Mtime
	a.Ctime = attr.Ctime
	a.Crtime = attr.Crtime
	a.Mode = attr.Mode()
	a.Nlink = attr.Nlink
	a.Uid = attr.Uid
	a.Gid = attr.Gid
	a.Rdev = uint32(attr.Rdev)
	a.Flags = attr.Flags
}
