package ruleset

import (
	"strings"

	"go.trai.ch/seer/internal/core/pathutil"
	"go.trai.ch/seer/internal/core/ports"
)

const (
	// Name is the name of the rule set predictor.
	Name = "CodeAnalysisRuleSet"

	ruleSetProperty            = "CodeAnalysisRuleSet"
	ruleSetDirectoriesProperty = "CodeAnalysisRuleSetDirectories"
)

var _ ports.ProjectPredictor = (*Predictor)(nil)

// Predictor reports the flattened code analysis rule set of a project as inputs.
type Predictor struct {
	resolver *Resolver
}

// NewPredictor creates a Predictor sharing resolver, and its cache, across projects.
func NewPredictor(resolver *Resolver) *Predictor {
	return &Predictor{resolver: resolver}
}

// Name returns the predictor name.
func (p *Predictor) Name() string { return Name }

// PredictInputsAndOutputs reports the rule set named by CodeAnalysisRuleSet. Bare names
// are also looked up in the CodeAnalysisRuleSetDirectories list.
func (p *Predictor) PredictInputsAndOutputs(project ports.EvaluatedProject, r ports.Reporter) error {
	identifier := strings.TrimSpace(project.Property(ruleSetProperty))
	if identifier == "" {
		return nil
	}

	var searchDirs []string
	for _, dir := range pathutil.SplitList(project.Property(ruleSetDirectoriesProperty)) {
		searchDirs = append(searchDirs, pathutil.Normalize(dir, project.Directory()))
	}

	for _, path := range p.resolver.Resolve(identifier, project.Directory(), searchDirs) {
		r.ReportInputFile(path)
	}
	return nil
}
