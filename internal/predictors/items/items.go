// Package items implements the predictors that map one property or item type directly
// to predicted paths.
package items

import (
	"strings"

	"go.trai.ch/seer/internal/core/pathutil"
	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/seer/internal/predictors/msbuild"
)

type bucket uint8

const (
	inputFile bucket = iota
	inputDirectory
	outputFile
	outputDirectory
)

func report(r ports.Reporter, b bucket, path string) {
	switch b {
	case inputFile:
		r.ReportInputFile(path)
	case inputDirectory:
		r.ReportInputDirectory(path)
	case outputFile:
		r.ReportOutputFile(path)
	case outputDirectory:
		r.ReportOutputDirectory(path)
	}
}

// itemPredictor reports the include of every item of the given types as an input file.
type itemPredictor struct {
	name      string
	itemTypes []string
}

func (p *itemPredictor) Name() string { return p.name }

func (p *itemPredictor) PredictInputsAndOutputs(project ports.EvaluatedProject, r ports.Reporter) error {
	for _, itemType := range p.itemTypes {
		for _, item := range project.Items(itemType) {
			r.ReportInputFile(item.Include)
		}
	}
	return nil
}

// NewCompileItems predicts Compile items as inputs.
func NewCompileItems() ports.ProjectPredictor {
	return &itemPredictor{name: "CompileItems", itemTypes: []string{"Compile"}}
}

// NewEmbeddedResourceItems predicts EmbeddedResource items as inputs.
func NewEmbeddedResourceItems() ports.ProjectPredictor {
	return &itemPredictor{name: "EmbeddedResourceItems", itemTypes: []string{"EmbeddedResource"}}
}

// NewAnalyzerItems predicts Analyzer items as inputs.
func NewAnalyzerItems() ports.ProjectPredictor {
	return &itemPredictor{name: "AnalyzerItems", itemTypes: []string{"Analyzer"}}
}

// NewEditorConfigFilesItems predicts EditorConfigFiles items as inputs.
func NewEditorConfigFilesItems() ports.ProjectPredictor {
	return &itemPredictor{name: "EditorConfigFilesItems", itemTypes: []string{"EditorConfigFiles"}}
}

// NewTypeScriptCompileItems predicts TypeScriptCompile items as inputs.
func NewTypeScriptCompileItems() ports.ProjectPredictor {
	return &itemPredictor{name: "TypeScriptCompileItems", itemTypes: []string{"TypeScriptCompile"}}
}

// NewXamlItems predicts XAML application definitions, pages and resources as inputs.
func NewXamlItems() ports.ProjectPredictor {
	return &itemPredictor{name: "XamlItems", itemTypes: []string{"ApplicationDefinition", "Page", "Resource"}}
}

// propertyPredictor reports the value of one property into one bucket.
type propertyPredictor struct {
	name     string
	property string
	bucket   bucket
	// enabled gates the prediction on another property, when set.
	enabled func(ports.EvaluatedProject) bool
}

func (p *propertyPredictor) Name() string { return p.name }

func (p *propertyPredictor) PredictInputsAndOutputs(project ports.EvaluatedProject, r ports.Reporter) error {
	if p.enabled != nil && !p.enabled(project) {
		return nil
	}
	if value := strings.TrimSpace(project.Property(p.property)); value != "" {
		report(r, p.bucket, value)
	}
	return nil
}

// NewDocumentationFile predicts the XML documentation file as an output.
func NewDocumentationFile() ports.ProjectPredictor {
	return &propertyPredictor{name: "DocumentationFile", property: "DocumentationFile", bucket: outputFile}
}

// NewApplicationIcon predicts the application icon as an input.
func NewApplicationIcon() ports.ProjectPredictor {
	return &propertyPredictor{name: "ApplicationIcon", property: "ApplicationIcon", bucket: inputFile}
}

// NewApplicationManifest predicts the application manifest as an input.
func NewApplicationManifest() ports.ProjectPredictor {
	return &propertyPredictor{name: "ApplicationManifest", property: "ApplicationManifest", bucket: inputFile}
}

// NewAssemblyOriginatorKeyFile predicts the strong-name key file as an input when
// SignAssembly is true.
func NewAssemblyOriginatorKeyFile() ports.ProjectPredictor {
	return &propertyPredictor{
		name:     "AssemblyOriginatorKeyFile",
		property: "AssemblyOriginatorKeyFile",
		bucket:   inputFile,
		enabled: func(project ports.EvaluatedProject) bool {
			return msbuild.IsTrue(project.Property("SignAssembly"))
		},
	}
}

// outputDirectoryPredictor reports the first set property of a fallback chain as an
// output directory.
type outputDirectoryPredictor struct {
	name       string
	properties []string
}

func (p *outputDirectoryPredictor) Name() string { return p.name }

func (p *outputDirectoryPredictor) PredictInputsAndOutputs(project ports.EvaluatedProject, r ports.Reporter) error {
	for _, property := range p.properties {
		if value := strings.TrimSpace(project.Property(property)); value != "" {
			r.ReportOutputDirectory(pathutil.Normalize(value, project.Directory()))
			return nil
		}
	}
	return nil
}

// NewOutputDirectory predicts OutDir (falling back to OutputPath) as an output directory.
func NewOutputDirectory() ports.ProjectPredictor {
	return &outputDirectoryPredictor{
		name:       "OutputDirectory",
		properties: []string{msbuild.OutDirProperty, msbuild.OutputPathProperty},
	}
}

// NewIntermediateOutputPath predicts the intermediate output directory.
func NewIntermediateOutputPath() ports.ProjectPredictor {
	return &outputDirectoryPredictor{
		name:       "IntermediateOutputPath",
		properties: []string{msbuild.IntermediateOutputPathProperty, msbuild.BaseIntermediateOutputPathProperty},
	}
}
