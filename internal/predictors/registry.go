// Package predictors assembles the default set of predictors.
package predictors

import (
	"strings"

	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/seer/internal/predictors/artifacts"
	"go.trai.ch/seer/internal/predictors/graph"
	"go.trai.ch/seer/internal/predictors/items"
	"go.trai.ch/seer/internal/predictors/ruleset"
	"go.trai.ch/zerr"
)

// Kind distinguishes single-project predictors from graph predictors.
type Kind string

const (
	// KindProject marks a predictor that inspects one project.
	KindProject Kind = "project"
	// KindGraph marks a predictor that needs the project's references.
	KindGraph Kind = "graph"
)

// Entry describes one registered predictor.
type Entry struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Registry is an ordered list of predictors. Order is deterministic and only matters
// for diagnostics: predictors do not depend on each other.
type Registry struct {
	project []ports.ProjectPredictor
	graph   []ports.GraphPredictor
}

// NewRegistry creates a registry from explicit predictor lists.
func NewRegistry(project []ports.ProjectPredictor, graph []ports.GraphPredictor) *Registry {
	return &Registry{
		project: append([]ports.ProjectPredictor(nil), project...),
		graph:   append([]ports.GraphPredictor(nil), graph...),
	}
}

// Default creates the registry of every built-in predictor. Predictors that touch the
// file system do so through fs; the rule set cache is shared by every project predicted
// with the returned registry.
func Default(fs ports.FileSystem) *Registry {
	return NewRegistry(
		[]ports.ProjectPredictor{
			items.NewProjectFileAndImports(),
			items.NewCompileItems(),
			items.NewEmbeddedResourceItems(),
			items.NewAnalyzerItems(),
			items.NewEditorConfigFilesItems(),
			items.NewTypeScriptCompileItems(),
			items.NewXamlItems(),
			items.NewReferenceItems(),
			items.NewContentItems(),
			items.NewNoneItems(),
			items.NewOutputDirectory(),
			items.NewIntermediateOutputPath(),
			items.NewDocumentationFile(),
			items.NewApplicationIcon(),
			items.NewApplicationManifest(),
			items.NewAssemblyOriginatorKeyFile(),
			items.NewAdditionalIncludeDirectories(),
			items.NewModuleDefinitionFile(),
			ruleset.NewPredictor(ruleset.NewResolver(fs)),
			artifacts.NewPredictor(fs),
		},
		[]ports.GraphPredictor{
			graph.NewProjectFileAndImports(),
			graph.NewCopyToOutputDirectoryItems(),
			graph.NewCopyToPublishDirectoryItems(),
			graph.NewProjectReferenceOutputs(),
		},
	)
}

// ProjectPredictors returns the single-project predictors in registry order.
func (r *Registry) ProjectPredictors() []ports.ProjectPredictor {
	return r.project
}

// GraphPredictors returns the graph predictors in registry order.
func (r *Registry) GraphPredictors() []ports.GraphPredictor {
	return r.graph
}

// Entries describes every registered predictor, project predictors first.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.project)+len(r.graph))
	for _, p := range r.project {
		entries = append(entries, Entry{Name: p.Name(), Kind: KindProject})
	}
	for _, p := range r.graph {
		entries = append(entries, Entry{Name: p.Name(), Kind: KindGraph})
	}
	return entries
}

// Lookup returns the entry of the predictor registered under name, ignoring case.
func (r *Registry) Lookup(name string) (Entry, bool) {
	for _, e := range r.Entries() {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

// Without returns a registry without the named predictors. Names are matched ignoring
// case; an unknown name is an error.
func (r *Registry) Without(names ...string) (*Registry, error) {
	disabled := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := r.Lookup(name); !ok {
			return nil, zerr.With(domain.ErrUnknownPredictor, "predictor", name)
		}
		disabled[strings.ToLower(name)] = struct{}{}
	}

	out := &Registry{}
	for _, p := range r.project {
		if _, off := disabled[strings.ToLower(p.Name())]; !off {
			out.project = append(out.project, p)
		}
	}
	for _, p := range r.graph {
		if _, off := disabled[strings.ToLower(p.Name())]; !off {
			out.graph = append(out.graph, p)
		}
	}
	return out, nil
}
