// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/seer/internal/core/domain"

// EvaluatedProject is the read-only view of one evaluated build file.
// Implementations must be safe for concurrent reads.
type EvaluatedProject interface {
	// FullPath returns the absolute path of the build file.
	FullPath() string
	// Directory returns the directory containing the build file.
	Directory() string
	// Property returns the evaluated value of a property, or "" when it is undefined.
	Property(name string) string
	// Items returns the evaluated items of the given type in evaluation order.
	Items(itemType string) []domain.Item
	// ImportPaths returns the absolute paths of every imported file.
	ImportPaths() []string
}

// ProjectGraphNode wraps one evaluated project and its direct references.
// The reference graph may contain cycles.
type ProjectGraphNode interface {
	Project() EvaluatedProject
	References() []ProjectGraphNode
}

// ProjectGraph is a loaded project reference graph.
type ProjectGraph interface {
	// EntryNode returns the node of the project the graph was loaded for.
	EntryNode() ProjectGraphNode
	// Nodes returns every node of the graph in deterministic discovery order.
	Nodes() []ProjectGraphNode
}
