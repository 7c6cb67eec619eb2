package pathutil

import (
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

var wildcardCache sync.Map // pattern -> *regexp.Regexp

// HasWildcard reports whether s contains '*' or '?'.
func HasWildcard(s string) bool {
	return strings.ContainsAny(s, "*?")
}

// IsMatchAll reports whether pattern matches every file name.
// "*.*" is included because file-copy tools treat it as "all files", extensionless ones too.
func IsMatchAll(pattern string) bool {
	return pattern == "*" || pattern == "*.*"
}

// CompileWildcard converts a file-name wildcard into an anchored, case-insensitive
// regular expression. '?' matches exactly one character and '*' any run of characters;
// everything else is literal.
func CompileWildcard(pattern string) *regexp.Regexp {
	if cached, ok := wildcardCache.Load(pattern); ok {
		return cached.(*regexp.Regexp) //nolint:forcetypeassert // Only *regexp.Regexp is stored
	}

	var b strings.Builder
	b.WriteString("(?i)^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")

	re := regexp.MustCompile(b.String())
	actual, _ := wildcardCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp) //nolint:forcetypeassert // Only *regexp.Regexp is stored
}

// MatchWildcard reports whether name matches the wildcard pattern, ignoring case.
// A pattern without wildcards is compared literally.
func MatchWildcard(pattern, name string) bool {
	if pattern == "" || IsMatchAll(pattern) {
		return true
	}
	if !HasWildcard(pattern) {
		return strings.EqualFold(pattern, name)
	}
	return CompileWildcard(pattern).MatchString(name)
}

// MatchGlob reports whether relPath matches a directory-aware glob ("**" spans
// directories). Matching ignores case and accepts either separator.
func MatchGlob(pattern, relPath string) bool {
	pattern = strings.ToLower(strings.ReplaceAll(pattern, `\`, "/"))
	relPath = strings.ToLower(path.Clean(strings.ReplaceAll(relPath, `\`, "/")))
	matched, err := doublestar.Match(pattern, relPath)
	return err == nil && matched
}
