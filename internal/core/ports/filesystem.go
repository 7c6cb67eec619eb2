package ports

// FileSystem is the read-only file-system surface used by predictors.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// FileExists reports whether path exists and is not a directory.
	FileExists(path string) bool
	// DirectoryExists reports whether path exists and is a directory.
	DirectoryExists(path string) bool
	// EnumerateFiles returns the absolute paths of the files directly inside dir whose
	// names match the wildcard pattern, sorted. An empty pattern matches every file.
	EnumerateFiles(dir, pattern string) ([]string, error)
	// EnumerateDirectories returns the absolute paths of the directories directly inside dir, sorted.
	EnumerateDirectories(dir string) ([]string, error)
	// ReadFile returns the content of the file at path.
	ReadFile(path string) ([]byte, error)
}
