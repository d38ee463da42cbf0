package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements FileSystem using real OS operations.
// Relative paths are resolved against root when one is set.
type OSFileSystem struct {
	root string
}

// NewOSFileSystem creates an OSFileSystem that resolves relative paths against the working directory
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// NewRootedFileSystem creates an OSFileSystem that resolves relative paths against root
func NewRootedFileSystem(root string) *OSFileSystem {
	return &OSFileSystem{root: root}
}

func (osfs *OSFileSystem) resolve(path string) string {
	if osfs.root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(osfs.root, path)
}

func (osfs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(osfs.resolve(path))
}

func (osfs *OSFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(osfs.resolve(path), data, perm)
}

func (osfs *OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(osfs.resolve(path), perm)
}

func (osfs *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(osfs.resolve(path))
	return err == nil
}
