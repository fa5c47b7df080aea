// Package passthru translates handle-based filesystem requests into
// operations on a host directory tree.
//
// A Dispatcher owns the handle registry for one mount. Handle 1 is the
// source root; every other handle is allocated when Lookup first resolves
// a path and stays valid until the Dispatcher is dropped.
package passthru

import (
	"errors"
	"io"
	"os"
	"syscall"

	"passthrufs/internal/logging"

	"golang.org/x/sys/unix"
)

// readDirBatch is how many host entries ReadDir pulls at a time.
const readDirBatch = 64

// DirEntry is one entry of a directory listing. Offset is the entry's
// position in the listing and is the cursor to pass back to ReadDir to
// resume after it. Inode is the entry's handle when its path has already
// been resolved by Lookup, and the host inode number otherwise; listing
// never allocates handles.
type DirEntry struct {
	Inode  uint64
	Kind   Kind
	Name   string
	Offset int64
}

// Statfs is the subset of statfs(2) reported for the mount.
type Statfs struct {
	Blocks  uint64
	Bfree   uint64
	Bavail  uint64
	Files   uint64
	Ffree   uint64
	Bsize   uint32
	Namelen uint32
	Frsize  uint32
}

// Dispatcher answers attribute, lookup, listing and read requests against
// a single source root. It is safe for concurrent use.
type Dispatcher struct {
	root     string
	host     HostFS
	registry *Registry
	logger   *logging.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithHost replaces the host filesystem primitives, mainly for tests.
func WithHost(h HostFS) Option {
	return func(d *Dispatcher) {
		d.host = h
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *logging.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// New creates a Dispatcher for sourceRoot with an empty registry.
func New(sourceRoot string, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		root:     sourceRoot,
		host:     OSHost{},
		registry: NewRegistry(),
		logger:   logging.GetLogger().WithPrefix("passthru"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Root returns the source root path.
func (d *Dispatcher) Root() string {
	return d.root
}

// Registry returns the handle registry owned by d.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// GetAttr returns the attribute record for a registered handle.
func (d *Dispatcher) GetAttr(h Handle) (Attr, error) {
	d.logger.Debug("getattr %d", h)

	rel, ok := d.registry.Resolve(h)
	if !ok {
		return Attr{}, notFound(OpGetattr, "", nil)
	}

	attr, err := d.stat(OpGetattr, rel)
	if err != nil {
		return Attr{}, err
	}
	attr.Handle = h
	if h == RootHandle {
		attr.Kind = KindDirectory
	}
	return attr, nil
}

// Lookup resolves name inside the directory denoted by parent. The child is
// registered before the record is returned; on failure nothing is recorded.
func (d *Dispatcher) Lookup(parent Handle, name string) (Attr, error) {
	d.logger.Debug("lookup %d %q", parent, name)

	dir, ok := d.registry.Resolve(parent)
	if !ok {
		return Attr{}, notFound(OpLookup, name, nil)
	}

	rel, err := childPath(dir, name)
	if err != nil {
		return Attr{}, notFound(OpLookup, name, err)
	}

	attr, err := d.stat(OpLookup, rel)
	if err != nil {
		// Whatever stopped the stat, the name does not resolve.
		var pe *Error
		if errors.As(err, &pe) {
			pe.Kind = ErrNotFound
		}
		return Attr{}, err
	}

	attr.Handle = d.registry.Record(rel)
	d.logger.Trace("lookup %q -> handle %d (%s)", rel, attr.Handle, attr.Kind)
	return attr, nil
}

// ReadDir lists the directory denoted by h, calling fill for each entry in
// order until fill returns false or the listing ends. The listing starts
// with "." and "..", followed by the host entries in the host's own order.
// A zero offset starts from the beginning; any other offset resumes after
// the entry that reported it. The host directory is re-read on every call.
func (d *Dispatcher) ReadDir(h Handle, offset int64, fill func(DirEntry) bool) error {
	d.logger.Debug("readdir %d %d", h, offset)

	rel, ok := d.registry.Resolve(h)
	if !ok {
		return notFound(OpReadDir, "", nil)
	}

	attr, err := d.stat(OpReadDir, rel)
	if err != nil {
		return err
	}
	if !attr.IsDir() && h != RootHandle {
		return notFound(OpReadDir, rel, syscall.ENOTDIR)
	}

	start := int64(0)
	if offset != 0 {
		start = offset + 1
	}

	parent := h
	if ph, ok := d.registry.Lookup(parentPath(rel)); ok {
		parent = ph
	}

	pos := int64(0)
	for _, dot := range []DirEntry{
		{Inode: uint64(h), Kind: KindDirectory, Name: "."},
		{Inode: uint64(parent), Kind: KindDirectory, Name: ".."},
	} {
		if pos >= start {
			dot.Offset = pos
			if !fill(dot) {
				return nil
			}
		}
		pos++
	}

	full := fullPath(d.root, rel)
	f, err := d.host.Open(full)
	if err != nil {
		return hostError(OpReadDir, rel, err)
	}
	defer f.Close()

	for {
		batch, err := f.ReadDir(readDirBatch)
		for _, de := range batch {
			p := pos
			pos++
			if p < start {
				continue
			}
			entry, ok := d.dirEntry(rel, de)
			if !ok {
				continue
			}
			entry.Offset = p
			d.logger.Trace("readdir %q: %d %s %q @%d", rel, entry.Inode, entry.Kind, entry.Name, entry.Offset)
			if !fill(entry) {
				return nil
			}
		}
		if errors.Is(err, io.EOF) || (err == nil && len(batch) == 0) {
			return nil
		}
		if err != nil {
			return ioError(OpReadDir, rel, err)
		}
	}
}

// dirEntry describes one host entry, following symlinks for the kind as
// Lookup does. Entries whose target cannot be stat'ed fall back to lstat
// and are reported as regular files; entries that vanished are skipped.
func (d *Dispatcher) dirEntry(dir string, de os.DirEntry) (DirEntry, bool) {
	rel, err := childPath(dir, de.Name())
	if err != nil {
		return DirEntry{}, false
	}
	full := fullPath(d.root, rel)

	var st unix.Stat_t
	entry := DirEntry{Kind: KindRegular, Name: de.Name()}
	if err := d.host.Stat(full, &st); err == nil {
		entry.Kind = kindOf(uint32(st.Mode))
	} else if err := d.host.Lstat(full, &st); err != nil {
		d.logger.Debug("readdir: skipping %q: %v", rel, err)
		return DirEntry{}, false
	}

	entry.Inode = st.Ino
	if h, ok := d.registry.Lookup(rel); ok {
		entry.Inode = uint64(h)
	}
	return entry, true
}

// ReadDirAll returns the complete listing of h.
func (d *Dispatcher) ReadDirAll(h Handle) ([]DirEntry, error) {
	var entries []DirEntry
	err := d.ReadDir(h, 0, func(e DirEntry) bool {
		entries = append(entries, e)
		return true
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Read returns up to length bytes of the file denoted by h starting at
// offset. The result is short at end of file and empty past it. The host
// file is opened and closed within the call.
func (d *Dispatcher) Read(h Handle, offset int64, length int) ([]byte, error) {
	d.logger.Debug("read %d offset=%d length=%d", h, offset, length)

	rel, ok := d.registry.Resolve(h)
	if !ok {
		return nil, notFound(OpRead, "", nil)
	}
	if offset < 0 {
		return nil, ioError(OpRead, rel, syscall.EINVAL)
	}

	f, err := d.host.Open(fullPath(d.root, rel))
	if err != nil {
		return nil, ioError(OpRead, rel, err)
	}
	defer f.Close()

	if length <= 0 {
		return []byte{}, nil
	}

	buf := make([]byte, length)
	n, err := f.ReadAt(buf, offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, ioError(OpRead, rel, err)
	}
	d.logger.Trace("read %q: %d bytes", rel, n)
	return buf[:n], nil
}

// Statfs reports usage of the filesystem holding the source root.
func (d *Dispatcher) Statfs() (Statfs, error) {
	var st unix.Statfs_t
	if err := d.host.Statfs(d.root, &st); err != nil {
		return Statfs{}, ioError(OpStatfs, "", err)
	}
	return statfsFromHost(&st), nil
}
