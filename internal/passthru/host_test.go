package passthru_test

import (
	"errors"
	"testing"

	"passthrufs/internal/passthru"
	"passthrufs/internal/passthru/mock"

	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"
)

func regularFile(size int64) func(string, *unix.Stat_t) error {
	return func(_ string, st *unix.Stat_t) error {
		st.Ino = 1234
		st.Mode = unix.S_IFREG | 0o644
		st.Size = size
		st.Nlink = 1
		return nil
	}
}

func newMockDispatcher(t *testing.T) (*passthru.Dispatcher, *mock.MockHostFS, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	host := mock.NewMockHostFS(ctrl)
	d := passthru.New("/src", passthru.WithHost(host), passthru.WithLogger(quietLogger()))
	return d, host, ctrl
}

func TestLookupPermissionDenied(t *testing.T) {
	d, host, _ := newMockDispatcher(t)

	host.EXPECT().Stat("/src/secret", gomock.Any()).Return(unix.EACCES)

	_, err := d.Lookup(passthru.RootHandle, "secret")
	if !passthru.IsNotFound(err) {
		t.Errorf("Expected NotFound, got %v", err)
	}
	if !errors.Is(err, unix.EACCES) {
		t.Errorf("Expected the host error to be preserved, got %v", err)
	}
	if d.Registry().Len() != 0 {
		t.Errorf("Failed lookup registered an entry")
	}
}

func TestGetAttrHostFailure(t *testing.T) {
	d, host, _ := newMockDispatcher(t)

	host.EXPECT().Stat("/src", gomock.Any()).Return(unix.EACCES)

	_, err := d.GetAttr(passthru.RootHandle)
	if !errors.Is(err, passthru.ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}

	var pe *passthru.Error
	if !errors.As(err, &pe) || pe.Op != passthru.OpGetattr {
		t.Errorf("Expected *Error for getattr, got %#v", err)
	}
}

func TestGetAttrRootForcedDirectory(t *testing.T) {
	d, host, _ := newMockDispatcher(t)

	host.EXPECT().Stat("/src", gomock.Any()).DoAndReturn(regularFile(10))

	attr, err := d.GetAttr(passthru.RootHandle)
	if err != nil {
		t.Fatalf("GetAttr failed: %v", err)
	}
	if !attr.IsDir() {
		t.Error("Root must always be reported as a directory")
	}
}

func TestReadHostFailures(t *testing.T) {
	t.Run("OpenFails", func(t *testing.T) {
		d, host, _ := newMockDispatcher(t)
		host.EXPECT().Stat("/src/a.txt", gomock.Any()).DoAndReturn(regularFile(4))
		host.EXPECT().Open("/src/a.txt").Return(nil, unix.EACCES)

		attr, err := d.Lookup(passthru.RootHandle, "a.txt")
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		if _, err := d.Read(attr.Handle, 0, 4); !errors.Is(err, passthru.ErrIO) {
			t.Errorf("Expected ErrIO, got %v", err)
		}
	})

	t.Run("ReadFailsAndCloses", func(t *testing.T) {
		d, host, ctrl := newMockDispatcher(t)
		file := mock.NewMockHostFile(ctrl)
		host.EXPECT().Stat("/src/a.txt", gomock.Any()).DoAndReturn(regularFile(4))
		host.EXPECT().Open("/src/a.txt").Return(file, nil)
		file.EXPECT().ReadAt(gomock.Any(), int64(2)).Return(0, unix.EIO)
		file.EXPECT().Close().Return(nil)

		attr, err := d.Lookup(passthru.RootHandle, "a.txt")
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		_, err = d.Read(attr.Handle, 2, 4)
		if !errors.Is(err, passthru.ErrIO) || !errors.Is(err, unix.EIO) {
			t.Errorf("Expected ErrIO wrapping EIO, got %v", err)
		}
	})
}

func TestReadDirHostFailure(t *testing.T) {
	d, host, ctrl := newMockDispatcher(t)
	dir := mock.NewMockHostFile(ctrl)

	host.EXPECT().Stat("/src", gomock.Any()).DoAndReturn(func(_ string, st *unix.Stat_t) error {
		st.Mode = unix.S_IFDIR | 0o755
		return nil
	})
	host.EXPECT().Open("/src").Return(dir, nil)
	dir.EXPECT().ReadDir(gomock.Any()).Return(nil, unix.EIO)
	dir.EXPECT().Close().Return(nil)

	var got []string
	err := d.ReadDir(passthru.RootHandle, 0, func(e passthru.DirEntry) bool {
		got = append(got, e.Name)
		return true
	})
	if !errors.Is(err, passthru.ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected the dot entries before the failure, got %v", got)
	}
}

func TestReadDirStopsBeforeHost(t *testing.T) {
	d, host, _ := newMockDispatcher(t)

	host.EXPECT().Stat("/src", gomock.Any()).DoAndReturn(func(_ string, st *unix.Stat_t) error {
		st.Mode = unix.S_IFDIR | 0o755
		return nil
	})

	// A full reply buffer after "." must not touch the host directory.
	err := d.ReadDir(passthru.RootHandle, 0, func(passthru.DirEntry) bool { return false })
	if err != nil {
		t.Errorf("ReadDir failed: %v", err)
	}
}

func TestStatfsHostFailure(t *testing.T) {
	d, host, _ := newMockDispatcher(t)

	host.EXPECT().Statfs("/src", gomock.Any()).Return(unix.EIO)

	if _, err := d.Statfs(); !errors.Is(err, passthru.ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
}
