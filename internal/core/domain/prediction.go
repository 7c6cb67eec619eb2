package domain

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/seer/internal/core/pathutil"
)

// PredictedPath is one de-duplicated entry of a prediction bucket.
type PredictedPath struct {
	// Path is the absolute path, as first reported.
	Path string `json:"path"`
	// PredictedBy lists the predictors that reported the path, in first-report order.
	PredictedBy []InternedString `json:"predictedBy"`
}

// PredictorFailure records a predictor that failed during a pass.
// Predictions reported before the failure are kept.
type PredictorFailure struct {
	Predictor string
	Err       error
}

// MarshalJSON renders the failure with its error message.
func (f PredictorFailure) MarshalJSON() ([]byte, error) {
	msg := ""
	if f.Err != nil {
		msg = f.Err.Error()
	}
	return json.Marshal(struct {
		Predictor string `json:"predictor"`
		Error     string `json:"error"`
	}{f.Predictor, msg})
}

// Prediction is the merged result of one prediction pass over one project.
// Every bucket is sorted by normalized path and must be treated as read-only.
type Prediction struct {
	Project           string             `json:"project"`
	InputFiles        []PredictedPath    `json:"inputFiles"`
	InputDirectories  []PredictedPath    `json:"inputDirectories"`
	OutputFiles       []PredictedPath    `json:"outputFiles"`
	OutputDirectories []PredictedPath    `json:"outputDirectories"`
	Failures          []PredictorFailure `json:"failures,omitempty"`
}

// IsEmpty reports whether no predictor contributed any path.
func (p *Prediction) IsEmpty() bool {
	return len(p.InputFiles) == 0 && len(p.InputDirectories) == 0 &&
		len(p.OutputFiles) == 0 && len(p.OutputDirectories) == 0
}

// Digest fingerprints the logical content of the prediction: the normalized paths of
// every bucket. Predictor tags and failures are not part of the digest.
func (p *Prediction) Digest() string {
	hasher := xxhash.New()
	for _, bucket := range [][]PredictedPath{p.InputFiles, p.InputDirectories, p.OutputFiles, p.OutputDirectories} {
		for _, entry := range bucket {
			_, _ = hasher.WriteString(pathutil.Key(entry.Path))
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0}) // Section separator
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
