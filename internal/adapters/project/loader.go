// Package project loads evaluated project documents and resolves their reference graph.
package project

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/pathutil"
	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/seer/internal/core/projectgraph"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectLoader = (*Loader)(nil)

// Loader implements ports.ProjectLoader for YAML project documents.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader. Skipped references are reported to log.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads the project at path and every project reachable through its
// ProjectReference items. path may be a project file or a directory holding exactly
// one project file. Failures to load the entry project are errors; unreadable or
// missing references are skipped with a warning.
func (l *Loader) Load(path string) (ports.ProjectGraph, error) {
	entryPath, err := resolveEntry(path)
	if err != nil {
		return nil, err
	}

	entry, err := loadProject(entryPath)
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*projectgraph.Node)
	root := projectgraph.NewNode(entry)
	nodes[pathutil.Key(entryPath)] = root
	l.resolveReferences(root, nodes)

	return projectgraph.NewGraph(root), nil
}

func (l *Loader) resolveReferences(node *projectgraph.Node, nodes map[string]*projectgraph.Node) {
	p := node.Project()
	for _, item := range p.Items(domain.ProjectReferenceItemType) {
		refPath := pathutil.Normalize(item.Include, p.Directory())
		key := pathutil.Key(refPath)

		if existing, ok := nodes[key]; ok {
			node.AddReference(existing)
			continue
		}

		ref, err := loadProject(refPath)
		if err != nil {
			l.logger.Warn("skipping project reference " + item.Include + " of " + p.FullPath() + ": " + err.Error())
			continue
		}

		refNode := projectgraph.NewNode(ref)
		nodes[key] = refNode
		node.AddReference(refNode)
		l.resolveReferences(refNode, nodes)
	}
}

func resolveEntry(path string) (string, error) {
	if path == "" {
		return "", domain.ErrNoProjectSpecified
	}

	abs, err := filepath.Abs(pathutil.FromBuildPath(path))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrProjectNotFound.Error()), "path", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", zerr.With(domain.ErrProjectNotFound, "path", abs)
	}
	if !info.IsDir() {
		return abs, nil
	}

	matches, err := filepath.Glob(filepath.Join(abs, "*"+domain.ProjectFileSuffix))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrProjectNotFound.Error()), "path", abs)
	}
	switch len(matches) {
	case 0:
		return "", zerr.With(domain.ErrProjectNotFound, "directory", abs)
	case 1:
		return matches[0], nil
	default:
		return "", zerr.With(zerr.With(domain.ErrAmbiguousProject, "directory", abs), "candidates", len(matches))
	}
}

func loadProject(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user or a project reference
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectReadFailed.Error()), "path", path)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectParseFailed.Error()), "path", path)
	}

	return toProject(path, &doc), nil
}

func toProject(path string, doc *Document) *domain.Project {
	dir := filepath.Dir(path)

	properties := make(map[string]string, len(doc.Properties)+3)
	properties["MSBuildProjectFullPath"] = path
	properties["MSBuildProjectDirectory"] = dir
	properties["MSBuildProjectName"] = projectName(path)
	for name, value := range doc.Properties {
		properties[name] = value
	}

	imports := make([]string, 0, len(doc.Imports))
	for _, imp := range doc.Imports {
		imports = append(imports, pathutil.Normalize(imp, dir))
	}

	items := make(map[string][]domain.Item, len(doc.Items))
	for itemType, dtos := range doc.Items {
		for _, dto := range dtos {
			if strings.TrimSpace(dto.Include) == "" {
				continue
			}
			items[itemType] = append(items[itemType], domain.NewItem(dto.Include, dto.Metadata))
		}
	}

	return domain.NewProject(domain.ProjectSpec{
		FullPath:   path,
		Properties: properties,
		Items:      items,
		Imports:    imports,
	})
}

func projectName(path string) string {
	base := filepath.Base(path)
	if strings.HasSuffix(base, domain.ProjectFileSuffix) {
		return strings.TrimSuffix(base, domain.ProjectFileSuffix)
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
