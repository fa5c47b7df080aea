package passthru

import (
	"path"
	"path/filepath"
	"strings"
)

// Registered paths are slash-separated and relative to the source root.
// The root itself is the empty string.

// childPath appends a single directory entry name to a registered path.
func childPath(parent, name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\x00") {
		return "", errInvalidName
	}
	if parent == "" {
		return name, nil
	}
	return parent + "/" + name, nil
}

// parentPath returns the registered path of rel's directory.
func parentPath(rel string) string {
	dir := path.Dir(rel)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}

// fullPath returns the host path for rel under root.
func fullPath(root, rel string) string {
	if rel == "" {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}
