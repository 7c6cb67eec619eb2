package artifacts

import (
	"path"
	"strings"

	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/pathutil"
	"go.trai.ch/seer/internal/predictors/msbuild"
)

// Metadata read from Robocopy and Artifact items.
const (
	destinationFolderMetadata       = "DestinationFolder"
	destinationSubDirectoryMetadata = "DestinationSubDirectory"
	fileMatchMetadata               = "FileMatch"
	fileExcludeMetadata             = "FileExclude"
	dirExcludeMetadata              = "DirExclude"
	isRecursiveMetadata             = "IsRecursive"
)

// directive is one "copy source to destinations" declaration with absolute paths.
type directive struct {
	source       string
	destinations []string
	subDir       string
	fileMatch    []string
	fileExclude  []string
	dirExclude   []string
	recursive    bool
	recursiveSet bool
}

func newDirective(item domain.Item, projectDir string) *directive {
	d := &directive{
		source:      pathutil.Normalize(item.Include, projectDir),
		subDir:      pathutil.FromBuildPath(strings.Trim(strings.TrimSpace(item.Metadata(destinationSubDirectoryMetadata)), `\/`)),
		fileMatch:   pathutil.SplitFields(item.Metadata(fileMatchMetadata)),
		fileExclude: pathutil.SplitFields(item.Metadata(fileExcludeMetadata)),
		recursive:   true,
	}

	for _, dest := range pathutil.SplitList(item.Metadata(destinationFolderMetadata)) {
		d.destinations = append(d.destinations, pathutil.Normalize(dest, projectDir))
	}

	for _, dir := range pathutil.SplitFields(item.Metadata(dirExcludeMetadata)) {
		dir = strings.Trim(strings.ReplaceAll(dir, `\`, "/"), "/")
		if dir != "" {
			d.dirExclude = append(d.dirExclude, strings.ToLower(dir))
		}
	}

	if item.HasMetadata(isRecursiveMetadata) {
		d.recursiveSet = true
		d.recursive = !msbuild.IsFalse(item.Metadata(isRecursiveMetadata))
	}
	return d
}

// probablyDirectory guesses whether a source that does not exist yet is a directory.
// Match or exclude filters and an explicit recursion flag only make sense for directories.
func (d *directive) probablyDirectory() bool {
	return len(d.fileMatch) > 0 || len(d.fileExclude) > 0 || len(d.dirExclude) > 0 || d.recursiveSet
}

func (d *directive) matchesAll() bool {
	if len(d.fileMatch) == 0 {
		return true
	}
	for _, pattern := range d.fileMatch {
		if pathutil.IsMatchAll(pattern) {
			return true
		}
	}
	return false
}

// searchPattern returns the pattern handed to the file system when enumerating a
// directory. A single match entry is pushed down; anything else is filtered here.
func (d *directive) searchPattern() string {
	if len(d.fileMatch) == 1 && !d.matchesAll() {
		return d.fileMatch[0]
	}
	return ""
}

// includesFile applies the file-match and file-exclude filters to a file name.
// Exclusion wins over inclusion.
func (d *directive) includesFile(name string) bool {
	for _, pattern := range d.fileExclude {
		if pathutil.MatchWildcard(pattern, name) {
			return false
		}
	}
	if d.matchesAll() {
		return true
	}
	for _, pattern := range d.fileMatch {
		if pathutil.MatchWildcard(pattern, name) {
			return true
		}
	}
	return false
}

// excludesDirectory reports whether the directory at relDir, slash-separated and
// relative to the source, is pruned. Entries match as a suffix of relDir on whole
// path segments; entries with wildcards match as globs at any depth.
func (d *directive) excludesDirectory(relDir string) bool {
	rel := strings.ToLower(path.Clean(relDir))
	for _, entry := range d.dirExclude {
		if pathutil.HasWildcard(entry) {
			if pathutil.MatchGlob("**/"+entry, rel) {
				return true
			}
			continue
		}
		if rel == entry || strings.HasSuffix(rel, "/"+entry) {
			return true
		}
	}
	return false
}
