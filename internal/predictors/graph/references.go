package graph

import (
	"path/filepath"

	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/pathutil"
	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/seer/internal/predictors/msbuild"
)

const (
	referenceOutputAssemblyMetadata = "ReferenceOutputAssembly"
	privateMetadata                 = "Private"
)

var _ ports.GraphPredictor = (*ProjectReferenceOutputs)(nil)

// ProjectReferenceOutputs predicts the primary outputs of directly referenced projects
// as inputs, and their copies into the consumer's output directory as outputs.
type ProjectReferenceOutputs struct{}

// NewProjectReferenceOutputs creates a ProjectReferenceOutputs graph predictor.
func NewProjectReferenceOutputs() *ProjectReferenceOutputs {
	return &ProjectReferenceOutputs{}
}

// Name returns the predictor name.
func (p *ProjectReferenceOutputs) Name() string { return "ProjectReferenceOutputsGraph" }

// PredictInputsAndOutputs reports referenced outputs. References with
// ReferenceOutputAssembly=false are build-order only and contribute nothing;
// Private=false outputs are consumed in place and not copied.
func (p *ProjectReferenceOutputs) PredictInputsAndOutputs(node ports.ProjectGraphNode, r ports.Reporter) error {
	consumer := node.Project()
	outDir := msbuild.OutDir(consumer)

	refs := make(map[string]ports.EvaluatedProject)
	for _, ref := range directReferences(node) {
		refs[pathutil.Key(ref.Project().FullPath())] = ref.Project()
	}

	for _, item := range consumer.Items(domain.ProjectReferenceItemType) {
		referenced, ok := refs[pathutil.Key(pathutil.Normalize(item.Include, consumer.Directory()))]
		if !ok || msbuild.IsFalse(item.Metadata(referenceOutputAssemblyMetadata)) {
			continue
		}

		output := msbuild.PrimaryOutput(referenced)
		if output == "" {
			continue
		}
		r.ReportInputFile(output)
		if outDir != "" && !msbuild.IsFalse(item.Metadata(privateMetadata)) {
			r.ReportOutputFile(filepath.Join(outDir, filepath.Base(output)))
		}
	}
	return nil
}
