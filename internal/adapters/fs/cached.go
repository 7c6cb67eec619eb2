package fs

import (
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/seer/internal/core/ports"
)

var _ ports.FileSystem = (*CachedFileSystem)(nil)

type statKind uint8

const (
	statMissing statKind = iota
	statFile
	statDirectory
)

// CachedFileSystem memoizes existence checks of an underlying FileSystem for the
// duration of one run. Entries are keyed by the cleaned path as given, so paths that
// differ only in case are checked separately. Enumeration and reads are passed through.
type CachedFileSystem struct {
	inner ports.FileSystem
	stats *lru.Cache[string, statKind]
}

// NewCachedFileSystem wraps inner with an existence cache holding up to size entries.
func NewCachedFileSystem(inner ports.FileSystem, size int) (*CachedFileSystem, error) {
	cache, err := lru.New[string, statKind](size)
	if err != nil {
		return nil, err
	}
	return &CachedFileSystem{inner: inner, stats: cache}, nil
}

func (c *CachedFileSystem) stat(path string) statKind {
	key := filepath.Clean(path)
	if kind, ok := c.stats.Get(key); ok {
		return kind
	}

	kind := statMissing
	switch {
	case c.inner.FileExists(path):
		kind = statFile
	case c.inner.DirectoryExists(path):
		kind = statDirectory
	}
	c.stats.Add(key, kind)
	return kind
}

// FileExists reports whether path exists and is not a directory.
func (c *CachedFileSystem) FileExists(path string) bool {
	return c.stat(path) == statFile
}

// DirectoryExists reports whether path exists and is a directory.
func (c *CachedFileSystem) DirectoryExists(path string) bool {
	return c.stat(path) == statDirectory
}

// EnumerateFiles delegates to the wrapped FileSystem.
func (c *CachedFileSystem) EnumerateFiles(dir, pattern string) ([]string, error) {
	return c.inner.EnumerateFiles(dir, pattern)
}

// EnumerateDirectories delegates to the wrapped FileSystem.
func (c *CachedFileSystem) EnumerateDirectories(dir string) ([]string, error) {
	return c.inner.EnumerateDirectories(dir)
}

// ReadFile delegates to the wrapped FileSystem.
func (c *CachedFileSystem) ReadFile(path string) ([]byte, error) {
	return c.inner.ReadFile(path)
}

// Len returns the number of cached existence checks.
func (c *CachedFileSystem) Len() int {
	return c.stats.Len()
}
