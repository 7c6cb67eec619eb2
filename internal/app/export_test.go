package app

import (
	"io"

	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/predictors"
)

// RenderText exposes the text renderer to tests.
func RenderText(w io.Writer, predictions []*domain.Prediction, hashes []string) error {
	reports := make([]report, len(predictions))
	for i, p := range predictions {
		reports[i] = report{Prediction: p}
		if i < len(hashes) {
			reports[i].InputHash = hashes[i]
		}
	}
	return renderText(w, reports)
}

// RenderPredictors exposes the predictor list renderer to tests.
func RenderPredictors(w io.Writer, entries []predictors.Entry) error {
	return renderPredictors(w, entries)
}
