package graph

import "go.trai.ch/seer/internal/core/ports"

var _ ports.GraphPredictor = (*ProjectFileAndImports)(nil)

// ProjectFileAndImports predicts the project file and imports of every project
// reachable through references. The predicted project's own file is left to the
// single-project predictor of the same concern.
type ProjectFileAndImports struct{}

// NewProjectFileAndImports creates a ProjectFileAndImports graph predictor.
func NewProjectFileAndImports() *ProjectFileAndImports {
	return &ProjectFileAndImports{}
}

// Name returns the predictor name.
func (p *ProjectFileAndImports) Name() string { return "ProjectFileAndImportsGraph" }

// PredictInputsAndOutputs reports the transitive closure of referenced project files.
func (p *ProjectFileAndImports) PredictInputsAndOutputs(node ports.ProjectGraphNode, r ports.Reporter) error {
	for _, ref := range closure(node) {
		project := ref.Project()
		r.ReportInputFile(project.FullPath())
		for _, imp := range project.ImportPaths() {
			r.ReportInputFile(imp)
		}
	}
	return nil
}
