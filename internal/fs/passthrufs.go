package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"passthrufs/internal/logging"
	"passthrufs/internal/passthru"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"
)

var (
	vfsLogger = logging.GetLogger().WithPrefix("vfs")
)

// PassthruFS serves a source directory read-only over FUSE. Every request
// is answered by the passthru dispatcher; the nodes here only carry the
// handle the dispatcher gave out.
type PassthruFS struct {
	sourceDir string
	core      *passthru.Dispatcher
	conn      *fuse.Conn
	done      chan error
}

var _ fusefs.FS = (*PassthruFS)(nil)
var _ fusefs.FSStatfser = (*PassthruFS)(nil)

// NewPassthruFS creates a filesystem for sourceDir. The source must be a
// readable directory; this is the only place that condition is reported.
func NewPassthruFS(sourceDir string, opts ...passthru.Option) (*PassthruFS, error) {
	vfsLogger.Info("Creating passthrough filesystem")
	vfsLogger.Debug("Source directory: %s", sourceDir)

	info, err := os.Stat(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", sourceDir)
	}
	if _, err := os.ReadDir(sourceDir); err != nil {
		vfsLogger.Error("Cannot read source directory: %v", err)
		return nil, fmt.Errorf("source directory not readable: %w", err)
	}

	return &PassthruFS{
		sourceDir: sourceDir,
		core:      passthru.New(sourceDir, opts...),
	}, nil
}

// Dispatcher returns the request dispatcher behind the filesystem.
func (vfs *PassthruFS) Dispatcher() *passthru.Dispatcher {
	return vfs.core
}

// Root implements the fusefs.FS interface, returning the root directory node.
func (vfs *PassthruFS) Root() (fusefs.Node, error) {
	vfsLogger.Trace("Getting root directory node")
	return &Dir{fs: vfs, handle: passthru.RootHandle}, nil
}

// Statfs reports the usage of the filesystem holding the source directory.
func (vfs *PassthruFS) Statfs(_ context.Context, _ *fuse.StatfsRequest, resp *fuse.StatfsResponse) error {
	st, err := vfs.core.Statfs()
	if err != nil {
		vfsLogger.Warn("statfs failed: %v", err)
		return ToFuseError(err)
	}
	resp.Blocks = st.Blocks
	resp.Bfree = st.Bfree
	resp.Bavail = st.Bavail
	resp.Files = st.Files
	resp.Ffree = st.Ffree
	resp.Bsize = st.Bsize
	resp.Namelen = st.Namelen
	resp.Frsize = st.Frsize
	return nil
}

// mountOptions are the fixed options every mount uses, keyed by their
// mount(8) spelling for logging and tests. default_permissions makes the
// kernel check the reported mode and ownership, which allow_other relies on.
var mountOptions = []struct {
	name string
	opt  fuse.MountOption
}{
	{"fsname=passthrufs", fuse.FSName("passthrufs")},
	{"subtype=passthrufs", fuse.Subtype("passthrufs")},
	{"ro", fuse.ReadOnly()},
	{"allow_other", fuse.AllowOther()},
	{"default_permissions", fuse.DefaultPermissions()},
}

// MountOptions returns the options passed to fuse.Mount.
func MountOptions() []fuse.MountOption {
	opts := make([]fuse.MountOption, 0, len(mountOptions))
	for _, o := range mountOptions {
		opts = append(opts, o.opt)
	}
	return opts
}

// MountOptionNames returns MountOptions in mount(8) notation.
func MountOptionNames() []string {
	names := make([]string, 0, len(mountOptions))
	for _, o := range mountOptions {
		names = append(names, o.name)
	}
	return names
}

func waitForMount(mountpoint string) error {
	for i := 0; i < 30; i++ {
		info, err := os.Stat(mountpoint)
		if err == nil && info.IsDir() {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("mount point not available after 3 seconds")
}

// Mount mounts the filesystem and starts serving it in the background.
// Use Wait to block until serving stops.
func (vfs *PassthruFS) Mount(mountPoint string) error {
	vfsLogger.Info("Mounting passthrough filesystem")
	vfsLogger.Debug("Mount point: %s", mountPoint)
	vfsLogger.Debug("Source directory: %s", vfs.sourceDir)
	vfsLogger.Debug("Mounting with options: %v", MountOptionNames())

	c, err := fuse.Mount(mountPoint, MountOptions()...)
	if err != nil {
		return fmt.Errorf("mount failed: %w", err)
	}
	vfs.conn = c
	vfs.done = make(chan error, 1)

	go func() {
		err := fusefs.Serve(c, vfs)
		if err != nil {
			vfsLogger.Error("FUSE server error: %v", err)
		}
		vfs.done <- err
	}()

	if err := waitForMount(mountPoint); err != nil {
		c.Close()
		vfsLogger.Error("Mount point not ready: %v", err)
		return fmt.Errorf("mount point failed to initialize: %w", err)
	}

	vfsLogger.Info("Filesystem mounted successfully")
	return nil
}

// Wait blocks until the FUSE server stops and closes the connection.
func (vfs *PassthruFS) Wait() error {
	if vfs.conn == nil {
		return errors.New("filesystem is not mounted")
	}
	err := <-vfs.done
	if cerr := vfs.conn.Close(); err == nil {
		err = cerr
	}
	return err
}

// Unmount cleanly unmounts the filesystem.
func (vfs *PassthruFS) Unmount(mountPoint string) error {
	vfsLogger.Info("Unmounting filesystem from: %s", mountPoint)
	if vfs.conn == nil {
		return nil
	}
	if err := fuse.Unmount(mountPoint); err != nil {
		vfsLogger.Error("Unmount failed: %v", err)
		return err
	}
	vfsLogger.Info("Unmount completed successfully")
	return nil
}
