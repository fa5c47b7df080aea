package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"bazil.org/fuse"
)

func TestFileOperations(t *testing.T) {
	vfs, sourceDir, cleanup := setupTestFS(t)
	defer cleanup()

	ctx := context.Background()

	testContent := []byte("test file content")
	testFilePath := filepath.Join(sourceDir, "testfile.txt")
	if err := os.WriteFile(testFilePath, testContent, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	root, _ := vfs.Root()
	node, err := lookup(ctx, t, root.(*Dir), "testfile.txt")
	if err != nil {
		t.Fatalf("Failed to lookup file: %v", err)
	}
	file, ok := node.(*File)
	if !ok {
		t.Fatalf("Expected *File, got %T", node)
	}

	t.Run("FileAttributes", func(t *testing.T) {
		attr := &fuse.Attr{}
		if err := file.Attr(ctx, attr); err != nil {
			t.Fatalf("Failed to get file attributes: %v", err)
		}
		if attr.Mode&os.ModeDir != 0 {
			t.Error("File should not be a directory")
		}
		if attr.Size != uint64(len(testContent)) {
			t.Errorf("Expected size %d, got %d", len(testContent), attr.Size)
		}
		info, err := os.Stat(testFilePath)
		if err != nil {
			t.Fatalf("Failed to stat test file: %v", err)
		}
		if attr.Mode.Perm() != info.Mode().Perm() {
			t.Errorf("Expected mode %v, got %v", info.Mode().Perm(), attr.Mode.Perm())
		}
		if attr.Inode != uint64(file.handle) {
			t.Errorf("Expected inode %d, got %d", file.handle, attr.Inode)
		}
	})

	t.Run("FileReading", func(t *testing.T) {
		resp := &fuse.OpenResponse{}
		handle, err := file.Open(ctx, &fuse.OpenRequest{Flags: fuse.OpenReadOnly}, resp)
		if err != nil {
			t.Fatalf("Failed to open file: %v", err)
		}
		if resp.Flags&fuse.OpenDirectIO == 0 {
			t.Error("Expected direct IO")
		}

		fh := handle.(*File)
		readResp := &fuse.ReadResponse{}
		if err := fh.Read(ctx, &fuse.ReadRequest{Offset: 5, Size: 4}, readResp); err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(readResp.Data) != "file" {
			t.Errorf("Expected content %q, got %q", "file", string(readResp.Data))
		}

		readResp = &fuse.ReadResponse{}
		if err := fh.Read(ctx, &fuse.ReadRequest{Offset: 100, Size: 4}, readResp); err != nil {
			t.Fatalf("Read past EOF should succeed: %v", err)
		}
		if len(readResp.Data) != 0 {
			t.Errorf("Expected no data past EOF, got %q", readResp.Data)
		}
	})

	t.Run("WriteOpenRejected", func(t *testing.T) {
		for _, flags := range []fuse.OpenFlags{fuse.OpenWriteOnly, fuse.OpenReadWrite} {
			_, err := file.Open(ctx, &fuse.OpenRequest{Flags: flags}, &fuse.OpenResponse{})
			if !errors.Is(err, syscall.EROFS) {
				t.Errorf("Open(%v): expected EROFS, got %v", flags, err)
			}
		}
	})

	t.Run("VanishedFile", func(t *testing.T) {
		if err := os.Remove(testFilePath); err != nil {
			t.Fatalf("Failed to remove file: %v", err)
		}

		err := file.Read(ctx, &fuse.ReadRequest{Size: 4}, &fuse.ReadResponse{})
		if !errors.Is(err, syscall.ENOENT) {
			t.Errorf("Expected host ENOENT from read, got %v", err)
		}

		if err := file.Attr(ctx, &fuse.Attr{}); !errors.Is(err, syscall.ENOENT) {
			t.Errorf("Expected ENOENT from attr, got %v", err)
		}
	})
}
