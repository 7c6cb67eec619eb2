// Package ruleset predicts code analysis rule sets: the configured rule set, every rule
// set it includes transitively and every rule assembly they hint at.
package ruleset

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/seer/internal/core/pathutil"
	"go.trai.ch/seer/internal/core/ports"
)

// Resolver flattens rule sets into the files they depend on. Flattened results are
// memoized per resolved rule set path and search directory list for the lifetime of the
// Resolver, which is safe for concurrent use.
type Resolver struct {
	fs    ports.FileSystem
	cache sync.Map // scope + pathutil.Key(ruleset) -> []string
}

// NewResolver creates a Resolver reading rule sets through fs.
func NewResolver(fs ports.FileSystem) *Resolver {
	return &Resolver{fs: fs}
}

// expansion carries the state of one resolution.
//
// inProgress holds the rule sets on the current recursion branch. Reaching one of them
// again closes a cycle. visited is only used while recovering from a cycle: the
// recovery pass computes a plain closure in which every rule set is expanded once.
type expansion struct {
	searchDirs []string
	scope      string
	inProgress map[string]struct{}
	inCycle    bool
	visited    map[string]struct{}
}

// Resolve returns the absolute paths of the rule set named by identifier and of every
// rule set and hinted rule assembly reachable from it, sorted. An identifier that does
// not resolve to an existing file yields nothing.
//
// A bare file name is looked up in baseDir, then in searchDirs in order. Other relative
// paths are resolved against baseDir.
func (r *Resolver) Resolve(identifier, baseDir string, searchDirs []string) []string {
	path, ok := r.locate(identifier, baseDir, searchDirs)
	if !ok {
		return nil
	}

	result := r.expand(path, &expansion{
		searchDirs: searchDirs,
		scope:      cacheScope(searchDirs),
		inProgress: make(map[string]struct{}),
	})
	return sortedPaths(result)
}

// cacheScope identifies a search directory list. Bare-name includes resolve through
// the search directories, so flattened results are only shared between resolutions
// searching the same directories.
func cacheScope(searchDirs []string) string {
	keys := make([]string, len(searchDirs))
	for i, dir := range searchDirs {
		keys[i] = pathutil.Key(pathutil.FromBuildPath(dir))
	}
	return strings.Join(keys, "\x00") + "\x01"
}

// locate turns a rule set identifier into an existing file.
func (r *Resolver) locate(identifier, baseDir string, searchDirs []string) (string, bool) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", false
	}

	if pathutil.IsBareFileName(identifier) {
		for _, dir := range append([]string{baseDir}, searchDirs...) {
			candidate := filepath.Join(pathutil.FromBuildPath(dir), identifier)
			if r.fs.FileExists(candidate) {
				return candidate, true
			}
		}
		return "", false
	}

	candidate := pathutil.Normalize(identifier, baseDir)
	if r.fs.FileExists(candidate) {
		return candidate, true
	}
	return "", false
}

// expand returns the flattened set of path, keyed by pathutil.Key.
func (r *Resolver) expand(path string, state *expansion) map[string]string {
	key := pathutil.Key(path)

	if state.inCycle {
		if _, seen := state.visited[key]; seen {
			return nil
		}
		state.visited[key] = struct{}{}
	} else {
		if cached, ok := r.cache.Load(state.scope + key); ok {
			return toSet(cached.([]string)) //nolint:forcetypeassert // Only []string is stored
		}
		if _, cyclic := state.inProgress[key]; cyclic {
			// Re-enter the cycle from this rule set with a fresh branch. The recovery pass
			// yields the complete closure, so the members on the current branch stay complete.
			return r.expand(path, &expansion{
				searchDirs: state.searchDirs,
				scope:      state.scope,
				inProgress: make(map[string]struct{}),
				inCycle:    true,
				visited:    make(map[string]struct{}),
			})
		}
	}

	state.inProgress[key] = struct{}{}
	result := map[string]string{key: path}

	if doc := r.read(path); doc != nil {
		dir := filepath.Dir(path)
		for _, inc := range doc.includePaths() {
			child, ok := r.locate(inc, dir, state.searchDirs)
			if !ok {
				continue
			}
			for k, p := range r.expand(child, state) {
				result[k] = p
			}
		}
		for _, hint := range doc.HintPaths {
			if strings.TrimSpace(hint) == "" {
				continue
			}
			hintPath := pathutil.Normalize(hint, dir)
			if r.fs.FileExists(hintPath) {
				result[pathutil.Key(hintPath)] = hintPath
			}
		}
	}

	delete(state.inProgress, key)

	if !state.inCycle {
		actual, _ := r.cache.LoadOrStore(state.scope+key, sortedPaths(result))
		return toSet(actual.([]string)) //nolint:forcetypeassert // Only []string is stored
	}
	return result
}

// read parses the rule set at path. Unreadable or malformed documents yield nil: the
// file is still an input but contributes nothing else.
func (r *Resolver) read(path string) *document {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil
	}
	doc, err := parseDocument(data)
	if err != nil {
		return nil
	}
	return doc
}

func toSet(paths []string) map[string]string {
	set := make(map[string]string, len(paths))
	for _, p := range paths {
		set[pathutil.Key(p)] = p
	}
	return set
}

func sortedPaths(set map[string]string) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	paths := make([]string, len(keys))
	for i, k := range keys {
		paths[i] = set[k]
	}
	return paths
}
