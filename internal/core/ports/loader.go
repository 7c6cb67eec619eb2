package ports

import "go.trai.ch/seer/internal/core/domain"

// ProjectLoader loads evaluated project documents and their reference graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the project at path (a file, or a directory holding exactly one project)
	// and every project reachable through its references.
	Load(path string) (ProjectGraph, error)
}

// SettingsLoader loads the tool settings.
type SettingsLoader interface {
	// Load reads the settings file from dir. A missing file yields zero settings.
	Load(dir string) (domain.Settings, error)
}
