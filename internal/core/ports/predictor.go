package ports

// Reporter receives the predictions of one predictor.
// Paths may be absolute or relative to the directory of the project being predicted.
type Reporter interface {
	ReportInputFile(path string)
	ReportInputDirectory(path string)
	ReportOutputFile(path string)
	ReportOutputDirectory(path string)
}

// ProjectPredictor predicts inputs and outputs from a single evaluated project.
//
// Expected absence (unset property, missing file, disabled feature) is not an error:
// the predictor reports nothing for that item. Unexpected failures are returned after
// the predictor has reported everything it could.
type ProjectPredictor interface {
	Name() string
	PredictInputsAndOutputs(project EvaluatedProject, reporter Reporter) error
}

// GraphPredictor predicts inputs and outputs that need the project's references.
type GraphPredictor interface {
	Name() string
	PredictInputsAndOutputs(node ProjectGraphNode, reporter Reporter) error
}
