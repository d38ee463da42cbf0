package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
)

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	mu         sync.RWMutex
	files      map[string]*MockFile
	currentDir string
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	IsDir   bool
}

// NewMockFileSystem creates a new MockFileSystem rooted at /workspace
func NewMockFileSystem() *MockFileSystem {
	mfs := &MockFileSystem{
		files:      make(map[string]*MockFile),
		currentDir: "/workspace",
	}
	mfs.addDirLocked(mfs.currentDir, 0755)
	return mfs
}

func (mfs *MockFileSystem) abs(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(mfs.currentDir, path)
	}
	return filepath.Clean(path)
}

// AddFile adds a file (and its parent directories) to the mock filesystem.
// Relative paths are resolved against the current directory.
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	cleanPath := mfs.abs(path)
	mfs.addDirLocked(filepath.Dir(cleanPath), 0755)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
	}
}

// AddDir adds a directory (and its parents) to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.addDirLocked(mfs.abs(path), 0755)
}

func (mfs *MockFileSystem) addDirLocked(path string, perm fs.FileMode) {
	for dir := path; ; dir = filepath.Dir(dir) {
		if _, exists := mfs.files[dir]; !exists {
			mfs.files[dir] = &MockFile{
				Mode:  perm | fs.ModeDir,
				IsDir: true,
			}
		}
		if parent := filepath.Dir(dir); parent == dir {
			return
		}
	}
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.abs(path)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: errors.New("is a directory")}
	}
	return file.Content, nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	cleanPath := mfs.abs(path)
	if dir, exists := mfs.files[filepath.Dir(cleanPath)]; !exists || !dir.IsDir {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	mfs.files[cleanPath] = &MockFile{
		Content: data,
		Mode:    perm,
	}
	return nil
}

func (mfs *MockFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.addDirLocked(mfs.abs(path), perm)
	return nil
}

// File returns a copy of the entry at path (helper for testing)
func (mfs *MockFileSystem) File(path string) (MockFile, bool) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.abs(path)]
	if !exists {
		return MockFile{}, false
	}
	return *file, true
}

func (mfs *MockFileSystem) Exists(path string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	_, exists := mfs.files[mfs.abs(path)]
	return exists
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.currentDir = filepath.Clean(dir)
	mfs.addDirLocked(mfs.currentDir, 0755)
}

// Paths returns the sorted paths of all regular files (for assertions)
func (mfs *MockFileSystem) Paths() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	var paths []string
	for p, f := range mfs.files {
		if !f.IsDir {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}
