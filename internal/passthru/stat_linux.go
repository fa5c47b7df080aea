//go:build linux

package passthru

import (
	"time"

	"golang.org/x/sys/unix"
)

func attrFromStat(st *unix.Stat_t) Attr {
	return Attr{
		HostInode: st.Ino,
		Size:      safeInt64ToUint64(int64(st.Size)),
		Blocks:    safeInt64ToUint64(int64(st.Blocks)),
		BlockSize: safeInt64ToUint32(int64(st.Blksize)),
		Atime:     time.Unix(st.Atim.Unix()),
		Mtime:     time.Unix(st.Mtim.Unix()),
		Ctime:     time.Unix(st.Ctim.Unix()),
		Crtime:    time.Unix(0, 0),
		Kind:      kindOf(uint32(st.Mode)),
		Perm:      uint32(st.Mode) & 0o7777,
		Nlink:     uint32(st.Nlink),
		Uid:       st.Uid,
		Gid:       st.Gid,
		Rdev:      uint64(st.Rdev),
	}
}

func statfsFromHost(st *unix.Statfs_t) Statfs {
	return Statfs{
		Blocks:  st.Blocks,
		Bfree:   st.Bfree,
		Bavail:  st.Bavail,
		Files:   st.Files,
		Ffree:   st.Ffree,
		Bsize:   safeInt64ToUint32(int64(st.Bsize)),
		Namelen: safeInt64ToUint32(int64(st.Namelen)),
		Frsize:  safeInt64ToUint32(int64(st.Frsize)),
	}
}
