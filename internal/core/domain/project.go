package domain

import (
	"path/filepath"
	"strings"
)

// Project is the read-only, already evaluated view of one build file.
// Property and item type names are case-insensitive.
type Project struct {
	fullPath   string
	properties map[string]string
	items      map[string][]Item
	imports    []string
}

// ProjectSpec holds the evaluated state used to construct a Project.
type ProjectSpec struct {
	// FullPath is the absolute path of the build file.
	FullPath string
	// Properties maps property names to their evaluated values.
	Properties map[string]string
	// Items maps item types to their evaluated items, in evaluation order.
	Items map[string][]Item
	// Imports lists the absolute paths of imported files.
	Imports []string
}

// NewProject creates an immutable Project from spec.
func NewProject(spec ProjectSpec) *Project {
	p := &Project{
		fullPath:   filepath.Clean(spec.FullPath),
		properties: make(map[string]string, len(spec.Properties)),
		items:      make(map[string][]Item, len(spec.Items)),
		imports:    append([]string(nil), spec.Imports...),
	}
	for name, value := range spec.Properties {
		p.properties[strings.ToLower(name)] = value
	}
	for itemType, items := range spec.Items {
		key := strings.ToLower(itemType)
		p.items[key] = append(p.items[key], items...)
	}
	return p
}

// FullPath returns the absolute path of the build file.
func (p *Project) FullPath() string {
	return p.fullPath
}

// Directory returns the directory containing the build file.
func (p *Project) Directory() string {
	return filepath.Dir(p.fullPath)
}

// Property returns the evaluated value of a property, or "" when it is not defined.
func (p *Project) Property(name string) string {
	return p.properties[strings.ToLower(name)]
}

// Items returns the items of the given type in evaluation order.
// The returned slice must not be modified.
func (p *Project) Items(itemType string) []Item {
	return p.items[strings.ToLower(itemType)]
}

// ImportPaths returns the absolute paths of every file imported by the project.
func (p *Project) ImportPaths() []string {
	return p.imports
}
