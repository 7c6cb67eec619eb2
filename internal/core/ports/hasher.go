package ports

import "go.trai.ch/seer/internal/core/domain"

// Hasher fingerprints the content behind a prediction.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash hashes the content of every predicted input file and of every file
	// below the predicted input directories. Missing inputs contribute their path only.
	ComputeInputHash(prediction *domain.Prediction) (string, error)
}
