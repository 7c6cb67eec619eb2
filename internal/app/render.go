package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/predictors"
	"go.trai.ch/seer/internal/ui/output"
	"go.trai.ch/seer/internal/ui/style"
)

// report is one rendered prediction.
type report struct {
	*domain.Prediction
	InputHash string `json:"inputHash,omitempty"`
}

func render(w io.Writer, format string, reports []report) error {
	if format == domain.FormatJSON {
		return renderJSON(w, reports)
	}
	return renderText(w, reports)
}

func renderJSON(w io.Writer, reports []report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Predictions []report `json:"predictions"`
	}{reports})
}

func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())
	return r
}

func renderText(w io.Writer, reports []report) error {
	r := newRenderer(w)
	var b strings.Builder

	for i, rep := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(style.Heading(r, rep.Project) + "\n")

		writeBucket(&b, r, "Input files", rep.InputFiles)
		writeBucket(&b, r, "Input directories", rep.InputDirectories)
		writeBucket(&b, r, "Output files", rep.OutputFiles)
		writeBucket(&b, r, "Output directories", rep.OutputDirectories)

		if rep.InputHash != "" {
			fmt.Fprintf(&b, "  Input hash %s\n", rep.InputHash)
		}
		for _, f := range rep.Failures {
			b.WriteString("  " + style.Failure(r, f.Predictor+": "+f.Err.Error()) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeBucket(b *strings.Builder, r *lipgloss.Renderer, title string, entries []domain.PredictedPath) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s (%d)\n", title, len(entries))
	for _, e := range entries {
		by := make([]string, len(e.PredictedBy))
		for i, name := range e.PredictedBy {
			by[i] = name.String()
		}
		fmt.Fprintf(b, "    %s %s\n", e.Path, style.Muted(r, style.Arrow+" "+strings.Join(by, ", ")))
	}
}

func renderPredictors(w io.Writer, entries []predictors.Entry) error {
	r := newRenderer(w)

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Name))
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%-*s  %s\n", width, e.Name, style.Muted(r, string(e.Kind)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
