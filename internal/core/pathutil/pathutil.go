// Package pathutil normalizes build-file paths and implements the wildcard matching
// used by predictors.
//
// Build files written for Windows use '\' separators and are case-insensitive, so both
// separators are accepted everywhere and equality is decided on Key.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FromBuildPath converts both '\' and '/' separators to the OS separator.
func FromBuildPath(path string) string {
	return filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))
}

// Normalize returns the cleaned absolute form of path. Relative paths are resolved
// against baseDir. Trailing separators are removed, except for filesystem roots.
func Normalize(path, baseDir string) string {
	path = FromBuildPath(strings.TrimSpace(path))
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(FromBuildPath(baseDir), path)
	}
	return filepath.Clean(path)
}

// Key returns the comparison key of an absolute path: separator-normalized,
// lower-cased and without a trailing separator.
func Key(path string) string {
	cleaned := filepath.ToSlash(filepath.Clean(FromBuildPath(path)))
	if len(cleaned) > 1 {
		cleaned = strings.TrimSuffix(cleaned, "/")
	}
	return strings.ToLower(cleaned)
}

// Equal reports whether two paths refer to the same location under Key semantics.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}

// IsBareFileName reports whether path is a file name without any directory component.
func IsBareFileName(path string) bool {
	return path != "" && !strings.ContainsAny(path, `/\`+string(os.PathSeparator))
}

// EnsureTrailingSeparator appends the OS separator when missing.
func EnsureTrailingSeparator(path string) string {
	if path == "" || strings.HasSuffix(path, string(os.PathSeparator)) {
		return path
	}
	return path + string(os.PathSeparator)
}

// SplitList splits an MSBuild ';'-separated list, trimming entries and dropping empty ones.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SplitFields splits a list that may be separated by ';' or whitespace.
func SplitFields(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
