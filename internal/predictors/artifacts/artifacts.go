// Package artifacts predicts the copy directives of the Microsoft Artifacts SDK:
// Robocopy and Artifact items copying a file or a filtered directory tree to one or
// more destination folders.
package artifacts

import (
	"errors"
	"path"
	"path/filepath"

	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/seer/internal/predictors/msbuild"
)

const (
	// Name is the name of the artifacts predictor.
	Name = "ArtifactsSdk"

	usingArtifactsSdkProperty = "UsingMicrosoftArtifactsSdk"
)

// Item types carrying copy directives.
var itemTypes = []string{"Robocopy", "Artifact"}

var _ ports.ProjectPredictor = (*Predictor)(nil)

// Predictor predicts copy directive sources as inputs and their copies as outputs.
type Predictor struct {
	fs ports.FileSystem
}

// NewPredictor creates a Predictor inspecting sources through fs.
func NewPredictor(fs ports.FileSystem) *Predictor {
	return &Predictor{fs: fs}
}

// Name returns the predictor name.
func (p *Predictor) Name() string { return Name }

// PredictInputsAndOutputs reports every Robocopy and Artifact item of a project using
// the Artifacts SDK. Enumeration failures do not stop the remaining directives; they are
// returned together once every directive has been predicted.
func (p *Predictor) PredictInputsAndOutputs(project ports.EvaluatedProject, r ports.Reporter) error {
	if !msbuild.IsTrue(project.Property(usingArtifactsSdkProperty)) {
		return nil
	}

	var errs []error
	for _, itemType := range itemTypes {
		for _, item := range project.Items(itemType) {
			if err := p.predict(newDirective(item, project.Directory()), r); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (p *Predictor) predict(d *directive, r ports.Reporter) error {
	switch {
	case p.fs.FileExists(d.source):
		p.reportFile(d, d.source, "", r)
		return nil
	case p.fs.DirectoryExists(d.source):
		return p.walk(d, d.source, "", r)
	case d.probablyDirectory():
		r.ReportInputDirectory(d.source)
		for _, dest := range d.destinations {
			r.ReportOutputDirectory(filepath.Join(dest, d.subDir))
		}
		return nil
	default:
		p.reportFile(d, d.source, "", r)
		return nil
	}
}

// walk reports the matching files of dir and, when recursive, descends into every
// child directory that is not excluded. relDir is dir relative to the source.
func (p *Predictor) walk(d *directive, dir, relDir string, r ports.Reporter) error {
	var errs []error

	files, err := p.fs.EnumerateFiles(dir, d.searchPattern())
	if err != nil {
		errs = append(errs, err)
	}
	for _, file := range files {
		if d.includesFile(filepath.Base(file)) {
			p.reportFile(d, file, relDir, r)
		}
	}

	if !d.recursive {
		return errors.Join(errs...)
	}

	dirs, err := p.fs.EnumerateDirectories(dir)
	if err != nil {
		errs = append(errs, err)
	}
	for _, child := range dirs {
		childRel := path.Join(relDir, filepath.Base(child))
		if d.excludesDirectory(childRel) {
			continue
		}
		if err := p.walk(d, child, childRel, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (p *Predictor) reportFile(d *directive, file, relDir string, r ports.Reporter) {
	r.ReportInputFile(file)
	for _, dest := range d.destinations {
		r.ReportOutputFile(filepath.Join(dest, d.subDir, filepath.FromSlash(relDir), filepath.Base(file)))
	}
}
