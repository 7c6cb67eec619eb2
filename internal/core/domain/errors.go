package domain

import "go.trai.ch/zerr"

var (
	// ErrNoProjectSpecified is returned when the predict command is invoked without a project.
	ErrNoProjectSpecified = zerr.New("no project specified")

	// ErrProjectNotFound is returned when the requested project document does not exist.
	ErrProjectNotFound = zerr.New("project file not found")

	// ErrAmbiguousProject is returned when a directory contains more than one project document.
	ErrAmbiguousProject = zerr.New("directory contains more than one project file")

	// ErrProjectReadFailed is returned when a project document cannot be read.
	ErrProjectReadFailed = zerr.New("failed to read project file")

	// ErrProjectParseFailed is returned when a project document cannot be parsed.
	ErrProjectParseFailed = zerr.New("failed to parse project file")

	// ErrSettingsReadFailed is returned when the settings file exists but cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrUnknownPredictor is returned when a predictor name does not match any registered predictor.
	ErrUnknownPredictor = zerr.New("unknown predictor")

	// ErrUnknownOutputFormat is returned when an unsupported output format is requested.
	ErrUnknownOutputFormat = zerr.New("unknown output format, expected 'text' or 'json'")

	// ErrInvalidParallelism is returned when the configured parallelism is negative.
	ErrInvalidParallelism = zerr.New("parallelism must not be negative")

	// ErrPredictorFailed is returned when a predictor reports an unexpected failure.
	ErrPredictorFailed = zerr.New("predictor failed")

	// ErrPredictorPanicked is returned when a predictor panics during a prediction pass.
	ErrPredictorPanicked = zerr.New("predictor panicked")

	// ErrEnumerationFailed is returned when a directory cannot be enumerated.
	ErrEnumerationFailed = zerr.New("failed to enumerate directory")

	// ErrFileReadFailed is returned when a file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrWriteHashFailed is returned when writing the hash to the digest fails.
	ErrWriteHashFailed = zerr.New("failed to write hash to digest")

	// ErrRenderFailed is returned when a prediction cannot be written to the output.
	ErrRenderFailed = zerr.New("failed to render prediction")
)
