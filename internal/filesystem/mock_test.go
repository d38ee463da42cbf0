package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockFileSystem_RelativePaths(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("categories/platforms.json", []byte(`{}`))

	require.True(t, mfs.Exists("/workspace/categories/platforms.json"))
	require.True(t, mfs.Exists("categories"))

	data, err := mfs.ReadFile("categories/platforms.json")
	require.NoError(t, err)
	require.Equal(t, `{}`, string(data))

	mfs.SetCurrentDir("/elsewhere")
	require.False(t, mfs.Exists("categories/platforms.json"))
}

func TestMockFileSystem_ReadMissing(t *testing.T) {
	mfs := NewMockFileSystem()

	_, err := mfs.ReadFile("missing.json")
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMockFileSystem_ReadDirectory(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddDir("/workspace/out")

	_, err := mfs.ReadFile("/workspace/out")
	require.Error(t, err)
}

func TestMockFileSystem_WriteRequiresParent(t *testing.T) {
	mfs := NewMockFileSystem()

	err := mfs.WriteFile("/workspace/out/portfolio.json", []byte(`{}`), 0644)
	require.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, mfs.MkdirAll("/workspace/out", 0755))
	require.NoError(t, mfs.WriteFile("/workspace/out/portfolio.json", []byte(`{}`), 0644))

	file, ok := mfs.File("/workspace/out/portfolio.json")
	require.True(t, ok)
	require.Equal(t, []byte(`{}`), file.Content)
	require.Equal(t, fs.FileMode(0644), file.Mode)
	require.False(t, file.IsDir)

	dir, ok := mfs.File("/workspace/out")
	require.True(t, ok)
	require.True(t, dir.IsDir)

	require.Equal(t, []string{"/workspace/out/portfolio.json"}, mfs.Paths())
}
