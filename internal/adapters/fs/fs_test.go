package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seer/internal/adapters/fs"
	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "src", "main.cs"), "class Main {}")
	writeFile(t, filepath.Join(tmpDir, "src", "main.tmp"), "scratch")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker()

	files := make(map[string]bool)
	for path := range walker.WalkFiles(tmpDir, []string{"ignored", "*.TMP"}) {
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		files[filepath.ToSlash(rel)] = true
	}

	assert.Equal(t, map[string]bool{"src/main.cs": true, "README.md": true}, files)
}

func TestWalker_EarlyStop(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.txt"), "a")
	writeFile(t, filepath.Join(tmpDir, "b.txt"), "b")

	count := 0
	for range fs.NewWalker().WalkFiles(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestFileSystem_Existence(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "a.txt")
	writeFile(t, file, "a")

	fsys := fs.NewFileSystem()

	assert.True(t, fsys.FileExists(file))
	assert.False(t, fsys.DirectoryExists(file))
	assert.True(t, fsys.DirectoryExists(tmpDir))
	assert.False(t, fsys.FileExists(tmpDir))
	assert.False(t, fsys.FileExists(filepath.Join(tmpDir, "missing.txt")))
	assert.False(t, fsys.DirectoryExists(filepath.Join(tmpDir, "missing")))
}

func TestFileSystem_EnumerateFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "b.dll"), "b")
	writeFile(t, filepath.Join(tmpDir, "a.DLL"), "a")
	writeFile(t, filepath.Join(tmpDir, "c.pdb"), "c")
	writeFile(t, filepath.Join(tmpDir, "sub", "d.dll"), "d")

	fsys := fs.NewFileSystem()

	all, err := fsys.EnumerateFiles(tmpDir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.DLL"),
		filepath.Join(tmpDir, "b.dll"),
		filepath.Join(tmpDir, "c.pdb"),
	}, all)

	dlls, err := fsys.EnumerateFiles(tmpDir, "*.dll")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "a.DLL"), filepath.Join(tmpDir, "b.dll")}, dlls)

	literal, err := fsys.EnumerateFiles(tmpDir, "C.PDB")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "c.pdb")}, literal)

	dirs, err := fsys.EnumerateDirectories(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "sub")}, dirs)
}

func TestFileSystem_EnumerateMissingDirectory(t *testing.T) {
	fsys := fs.NewFileSystem()

	_, err := fsys.EnumerateFiles(filepath.Join(t.TempDir(), "missing"), "*")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrEnumerationFailed.Error())
}

func TestFileSystem_ReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "a.txt")
	writeFile(t, file, "content")

	fsys := fs.NewFileSystem()

	data, err := fsys.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	_, err = fsys.ReadFile(filepath.Join(tmpDir, "missing.txt"))
	require.Error(t, err)
}

func TestCachedFileSystem_MemoizesExistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockFileSystem(ctrl)

	inner.EXPECT().FileExists("/repo/a.cs").Return(true).Times(1)
	inner.EXPECT().FileExists("/repo/dir").Return(false).Times(1)
	inner.EXPECT().DirectoryExists("/repo/dir").Return(true).Times(1)
	inner.EXPECT().FileExists("/REPO/A.cs").Return(false).Times(1)
	inner.EXPECT().DirectoryExists("/REPO/A.cs").Return(false).Times(1)

	cached, err := fs.NewCachedFileSystem(inner, 16)
	require.NoError(t, err)

	assert.True(t, cached.FileExists("/repo/a.cs"))
	assert.True(t, cached.FileExists("/repo/./a.cs"))
	assert.False(t, cached.DirectoryExists("/repo/a.cs"))
	assert.True(t, cached.DirectoryExists("/repo/dir"))
	assert.False(t, cached.FileExists("/repo/dir/"))
	assert.False(t, cached.FileExists("/REPO/A.cs"))
	assert.False(t, cached.FileExists("/REPO/A.cs"))
	assert.Equal(t, 3, cached.Len())
}

func TestCachedFileSystem_AgreesWithDiskOnCase(t *testing.T) {
	dir := t.TempDir()
	lower := filepath.Join(dir, "shared.ruleset")
	upper := filepath.Join(dir, "Shared.ruleset")
	writeFile(t, lower, "<RuleSet />")

	plain := fs.NewFileSystem()
	cached, err := fs.NewCachedFileSystem(plain, 16)
	require.NoError(t, err)

	require.True(t, cached.FileExists(lower))
	assert.Equal(t, plain.FileExists(upper), cached.FileExists(upper))
	assert.Equal(t, plain.DirectoryExists(upper), cached.DirectoryExists(upper))
}

func TestCachedFileSystem_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockFileSystem(ctrl)

	inner.EXPECT().EnumerateFiles("/repo", "*.cs").Return([]string{"/repo/a.cs"}, nil)
	inner.EXPECT().EnumerateDirectories("/repo").Return([]string{"/repo/sub"}, nil)
	inner.EXPECT().ReadFile("/repo/a.cs").Return([]byte("x"), nil)

	cached, err := fs.NewCachedFileSystem(inner, 16)
	require.NoError(t, err)

	files, err := cached.EnumerateFiles("/repo", "*.cs")
	require.NoError(t, err)
	assert.Equal(t, []string{"/repo/a.cs"}, files)

	dirs, err := cached.EnumerateDirectories("/repo")
	require.NoError(t, err)
	assert.Equal(t, []string{"/repo/sub"}, dirs)

	data, err := cached.ReadFile("/repo/a.cs")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), data)
}

func TestNewCachedFileSystem_InvalidSize(t *testing.T) {
	_, err := fs.NewCachedFileSystem(fs.NewFileSystem(), 0)
	require.Error(t, err)
}
