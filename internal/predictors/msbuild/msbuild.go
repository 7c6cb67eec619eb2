// Package msbuild holds the property names and evaluation conventions shared by predictors.
package msbuild

import (
	"path/filepath"
	"strings"

	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/pathutil"
	"go.trai.ch/seer/internal/core/ports"
)

// Property names.
const (
	OutDirProperty                     = "OutDir"
	OutputPathProperty                 = "OutputPath"
	IntermediateOutputPathProperty     = "IntermediateOutputPath"
	BaseIntermediateOutputPathProperty = "BaseIntermediateOutputPath"
	PublishDirProperty                 = "PublishDir"
	TargetPathProperty                 = "TargetPath"
	TargetFileNameProperty             = "TargetFileName"
	TargetExtProperty                  = "TargetExt"
	AssemblyNameProperty               = "AssemblyName"
	ProjectNameProperty                = "MSBuildProjectName"
	CopyContentTransitivelyProperty    = "MSBuildCopyContentTransitively"
)

// Metadata names.
const (
	CopyToOutputDirectoryMetadata  = "CopyToOutputDirectory"
	CopyToPublishDirectoryMetadata = "CopyToPublishDirectory"
	TargetPathMetadata             = "TargetPath"
	LinkMetadata                   = "Link"
)

// Copy-to-output values.
const (
	CopyAlways         = "Always"
	CopyPreserveNewest = "PreserveNewest"
	CopyIfDifferent    = "IfDifferent"
)

// IsTrue reports whether a property or metadata value evaluates to true.
func IsTrue(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}

// IsFalse reports whether a value is explicitly false. Unset values are not false.
func IsFalse(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "false")
}

// OutDir returns the absolute output directory of the project: OutDir, falling back
// to OutputPath. It returns "" when neither is set.
func OutDir(project ports.EvaluatedProject) string {
	dir := strings.TrimSpace(project.Property(OutDirProperty))
	if dir == "" {
		dir = strings.TrimSpace(project.Property(OutputPathProperty))
	}
	if dir == "" {
		return ""
	}
	return pathutil.Normalize(dir, project.Directory())
}

// ShouldCopy reports whether a CopyToOutputDirectory or CopyToPublishDirectory value
// requests a copy.
func ShouldCopy(value string) bool {
	value = strings.TrimSpace(value)
	return strings.EqualFold(value, CopyAlways) ||
		strings.EqualFold(value, CopyPreserveNewest) ||
		strings.EqualFold(value, CopyIfDifferent)
}

// CopyDestination returns the path, relative to the output directory, an item is copied to:
// its TargetPath metadata, else its Link metadata, else its include relative to the project
// directory when it lies inside it, else its file name.
func CopyDestination(item domain.Item, projectDir string) string {
	if target := strings.TrimSpace(item.Metadata(TargetPathMetadata)); target != "" {
		return pathutil.FromBuildPath(target)
	}
	if link := strings.TrimSpace(item.Metadata(LinkMetadata)); link != "" {
		return pathutil.FromBuildPath(link)
	}

	source := pathutil.Normalize(item.Include, projectDir)
	if rel, err := filepath.Rel(projectDir, source); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return filepath.Base(source)
}

// PrimaryOutput returns the absolute path of the project's main build output: TargetPath,
// else OutDir joined with TargetFileName, else OutDir joined with AssemblyName (defaulting
// to the project name) and TargetExt (defaulting to ".dll"). It returns "" when the output
// directory is unknown.
func PrimaryOutput(project ports.EvaluatedProject) string {
	if target := strings.TrimSpace(project.Property(TargetPathProperty)); target != "" {
		return pathutil.Normalize(target, project.Directory())
	}

	outDir := OutDir(project)
	if outDir == "" {
		return ""
	}

	if fileName := strings.TrimSpace(project.Property(TargetFileNameProperty)); fileName != "" {
		return filepath.Join(outDir, pathutil.FromBuildPath(fileName))
	}

	name := strings.TrimSpace(project.Property(AssemblyNameProperty))
	if name == "" {
		name = strings.TrimSpace(project.Property(ProjectNameProperty))
	}
	if name == "" {
		return ""
	}
	ext := strings.TrimSpace(project.Property(TargetExtProperty))
	if ext == "" {
		ext = ".dll"
	}
	return filepath.Join(outDir, name+ext)
}
