package fs

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/pathutil"
	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem is the read-only view of the local disk used by predictors.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// FileExists reports whether path exists and is not a directory.
func (f *FileSystem) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirectoryExists reports whether path exists and is a directory.
func (f *FileSystem) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnumerateFiles lists the files directly inside dir whose names match pattern.
func (f *FileSystem) EnumerateFiles(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnumerationFailed.Error()), "path", dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !pathutil.MatchWildcard(pattern, entry.Name()) {
			continue
		}
		if entry.Type()&os.ModeSymlink != 0 && !f.FileExists(filepath.Join(dir, entry.Name())) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// EnumerateDirectories lists the directories directly inside dir.
func (f *FileSystem) EnumerateDirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnumerationFailed.Error()), "path", dir)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// ReadFile returns the content of the file at path.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the evaluated project
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return data, nil
}
