package items

import (
	"strings"

	"go.trai.ch/seer/internal/core/pathutil"
	"go.trai.ch/seer/internal/core/ports"
)

// AdditionalIncludeDirectories predicts the include directories of ClCompile items.
type AdditionalIncludeDirectories struct{}

// NewAdditionalIncludeDirectories creates an AdditionalIncludeDirectories predictor.
func NewAdditionalIncludeDirectories() *AdditionalIncludeDirectories {
	return &AdditionalIncludeDirectories{}
}

// Name returns the predictor name.
func (p *AdditionalIncludeDirectories) Name() string { return "AdditionalIncludeDirectories" }

// PredictInputsAndOutputs reports every directory listed in the AdditionalIncludeDirectories
// metadata. Unexpanded metadata references such as %(AdditionalIncludeDirectories) are skipped.
func (p *AdditionalIncludeDirectories) PredictInputsAndOutputs(project ports.EvaluatedProject, r ports.Reporter) error {
	for _, item := range project.Items("ClCompile") {
		for _, dir := range pathutil.SplitList(item.Metadata("AdditionalIncludeDirectories")) {
			if strings.Contains(dir, "%(") {
				continue
			}
			r.ReportInputDirectory(dir)
		}
	}
	return nil
}

// ModuleDefinitionFile predicts the module definition file passed to the linker.
type ModuleDefinitionFile struct{}

// NewModuleDefinitionFile creates a ModuleDefinitionFile predictor.
func NewModuleDefinitionFile() *ModuleDefinitionFile {
	return &ModuleDefinitionFile{}
}

// Name returns the predictor name.
func (p *ModuleDefinitionFile) Name() string { return "ModuleDefinitionFile" }

// PredictInputsAndOutputs reports the ModuleDefinitionFile metadata of Link items.
func (p *ModuleDefinitionFile) PredictInputsAndOutputs(project ports.EvaluatedProject, r ports.Reporter) error {
	for _, item := range project.Items("Link") {
		if def := strings.TrimSpace(item.Metadata("ModuleDefinitionFile")); def != "" {
			r.ReportInputFile(def)
		}
	}
	return nil
}
