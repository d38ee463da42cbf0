package filesystem

import (
	"io/fs"
)

// FileSystem provides an abstraction over the file operations a build needs,
// so category tables and rendered output can be tested in memory.
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Path operations
	Exists(path string) bool
}
