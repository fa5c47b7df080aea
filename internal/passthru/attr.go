package passthru

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// TTL is how long a caller may trust an Attr without asking again.
const TTL = time.Second

// Kind is the entry type reported to callers. Anything the host does not
// report as a directory (symlink targets aside, devices, fifos, sockets) is
// a regular file.
type Kind uint8

const (
	KindRegular Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Attr is the attribute record for one path. It is derived from host
// metadata on every request and never stored.
type Attr struct {
	Handle    Handle
	HostInode uint64
	Size      uint64
	Blocks    uint64
	BlockSize uint32
	Atime     time.Time
	Mtime     time.Time
	Ctime     time.Time
	// Crtime is not available from stat(2); always the Unix epoch.
	Crtime time.Time
	Kind   Kind
	// Perm holds the permission, setuid, setgid and sticky bits.
	Perm  uint32
	Nlink uint32
	Uid   uint32
	Gid   uint32
	Rdev  uint64
	Flags uint32
}

// Mode renders Kind and Perm as an os.FileMode.
func (a Attr) Mode() os.FileMode {
	mode := os.FileMode(a.Perm & 0o777)
	if a.Perm&unix.S_ISUID != 0 {
		mode |= os.ModeSetuid
	}
	if a.Perm&unix.S_ISGID != 0 {
		mode |= os.ModeSetgid
	}
	if a.Perm&unix.S_ISVTX != 0 {
		mode |= os.ModeSticky
	}
	if a.Kind == KindDirectory {
		mode |= os.ModeDir
	}
	return mode
}

// IsDir reports whether the record describes a directory.
func (a Attr) IsDir() bool {
	return a.Kind == KindDirectory
}

func kindOf(mode uint32) Kind {
	if mode&unix.S_IFMT == unix.S_IFDIR {
		return KindDirectory
	}
	return KindRegular
}

// stat produces the attribute record for the host path of rel. The record
// carries no handle; callers fill it in.
func (d *Dispatcher) stat(op, rel string) (Attr, error) {
	var st unix.Stat_t
	full := fullPath(d.root, rel)
	d.logger.Trace("stat %q", full)
	if err := d.host.Stat(full, &st); err != nil {
		return Attr{}, hostError(op, rel, err)
	}
	attr := attrFromStat(&st)
	d.logger.Trace("attr %q: %+v", full, attr)
	return attr, nil
}
