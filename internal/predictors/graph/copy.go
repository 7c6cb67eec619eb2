package graph

import (
	"path/filepath"
	"strings"

	"go.trai.ch/seer/internal/core/pathutil"
	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/seer/internal/predictors/msbuild"
)

// copyItemTypes are the item types whose copy metadata is honoured across references.
var copyItemTypes = []string{"Content", "None", "EmbeddedResource", "Compile", "_CompileItemsToCopy"}

// copyItemsPredictor propagates the copy items of referenced projects into the
// directory of the consuming project.
//
// Only direct references are examined, matching the build rule being emulated, unless
// the consumer sets MSBuildCopyContentTransitively.
type copyItemsPredictor struct {
	name     string
	metadata string
	destDir  func(project ports.EvaluatedProject) string
}

// NewCopyToOutputDirectoryItems predicts the CopyToOutputDirectory items of
// references copied into the consumer's output directory.
func NewCopyToOutputDirectoryItems() ports.GraphPredictor {
	return &copyItemsPredictor{
		name:     "GetCopyToOutputDirectoryItemsGraph",
		metadata: msbuild.CopyToOutputDirectoryMetadata,
		destDir:  msbuild.OutDir,
	}
}

// NewCopyToPublishDirectoryItems predicts the CopyToPublishDirectory items of
// references copied into the consumer's publish directory.
func NewCopyToPublishDirectoryItems() ports.GraphPredictor {
	return &copyItemsPredictor{
		name:     "GetCopyToPublishDirectoryItemsGraph",
		metadata: msbuild.CopyToPublishDirectoryMetadata,
		destDir:  publishDir,
	}
}

func publishDir(project ports.EvaluatedProject) string {
	dir := strings.TrimSpace(project.Property(msbuild.PublishDirProperty))
	if dir == "" {
		return ""
	}
	return pathutil.Normalize(dir, project.Directory())
}

func (p *copyItemsPredictor) Name() string { return p.name }

func (p *copyItemsPredictor) PredictInputsAndOutputs(node ports.ProjectGraphNode, r ports.Reporter) error {
	consumer := node.Project()
	dest := p.destDir(consumer)
	if dest == "" {
		return nil
	}

	deps := directReferences(node)
	if msbuild.IsTrue(consumer.Property(msbuild.CopyContentTransitivelyProperty)) {
		deps = closure(node)
	}

	for _, dep := range deps {
		project := dep.Project()
		for _, itemType := range copyItemTypes {
			for _, item := range project.Items(itemType) {
				if !msbuild.ShouldCopy(item.Metadata(p.metadata)) {
					continue
				}
				r.ReportInputFile(pathutil.Normalize(item.Include, project.Directory()))
				r.ReportOutputFile(filepath.Join(dest, msbuild.CopyDestination(item, project.Directory())))
			}
		}
	}
	return nil
}
