package items

import (
	"path/filepath"
	"strings"

	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/seer/internal/predictors/msbuild"
)

// ProjectFileAndImports predicts the project file and every import as inputs.
type ProjectFileAndImports struct{}

// NewProjectFileAndImports creates a ProjectFileAndImports predictor.
func NewProjectFileAndImports() *ProjectFileAndImports {
	return &ProjectFileAndImports{}
}

// Name returns the predictor name.
func (p *ProjectFileAndImports) Name() string { return "ProjectFileAndImports" }

// PredictInputsAndOutputs reports the project file and its imports.
func (p *ProjectFileAndImports) PredictInputsAndOutputs(project ports.EvaluatedProject, r ports.Reporter) error {
	r.ReportInputFile(project.FullPath())
	for _, imp := range project.ImportPaths() {
		r.ReportInputFile(imp)
	}
	return nil
}

// ReferenceItems predicts the HintPath of Reference items as inputs.
type ReferenceItems struct{}

// NewReferenceItems creates a ReferenceItems predictor.
func NewReferenceItems() *ReferenceItems {
	return &ReferenceItems{}
}

// Name returns the predictor name.
func (p *ReferenceItems) Name() string { return "ReferenceItems" }

// PredictInputsAndOutputs reports every Reference HintPath. References resolved from
// the framework or a package feed have no HintPath and are not predicted.
func (p *ReferenceItems) PredictInputsAndOutputs(project ports.EvaluatedProject, r ports.Reporter) error {
	for _, item := range project.Items("Reference") {
		if hint := strings.TrimSpace(item.Metadata("HintPath")); hint != "" {
			r.ReportInputFile(hint)
		}
	}
	return nil
}

// copyItemsPredictor predicts items of one type as inputs, and those marked
// CopyToOutputDirectory as outputs under the output directory.
type copyItemsPredictor struct {
	name     string
	itemType string
}

// NewContentItems predicts Content items.
func NewContentItems() ports.ProjectPredictor {
	return &copyItemsPredictor{name: "ContentItems", itemType: "Content"}
}

// NewNoneItems predicts None items.
func NewNoneItems() ports.ProjectPredictor {
	return &copyItemsPredictor{name: "NoneItems", itemType: "None"}
}

func (p *copyItemsPredictor) Name() string { return p.name }

func (p *copyItemsPredictor) PredictInputsAndOutputs(project ports.EvaluatedProject, r ports.Reporter) error {
	outDir := msbuild.OutDir(project)
	for _, item := range project.Items(p.itemType) {
		r.ReportInputFile(item.Include)
		if outDir != "" && msbuild.ShouldCopy(item.Metadata(msbuild.CopyToOutputDirectoryMetadata)) {
			r.ReportOutputFile(filepath.Join(outDir, msbuild.CopyDestination(item, project.Directory())))
		}
	}
	return nil
}
