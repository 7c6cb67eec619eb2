package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/pathutil"
	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints the content of predicted inputs.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from a prediction
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeInputHash hashes the content of the predicted input files and of every file
// below the predicted input directories. Inputs that do not exist yet or cannot be read
// contribute their normalized path only, so the fingerprint changes once they are produced.
func (h *Hasher) ComputeInputHash(prediction *domain.Prediction) (string, error) {
	hasher := xxhash.New()

	for _, entry := range prediction.InputFiles {
		if err := h.hashInputFile(entry.Path, hasher); err != nil {
			return "", err
		}
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, entry := range prediction.InputDirectories {
		if err := h.hashInputDirectory(entry.Path, hasher); err != nil {
			return "", err
		}
	}
	_, _ = hasher.Write([]byte{0})

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashInputFile(path string, hasher io.Writer) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		writePath(path, hasher)
		return nil
	}
	return h.hashFile(path, hasher)
}

func (h *Hasher) hashInputDirectory(path string, hasher io.Writer) error {
	writePath(path, hasher)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil
	}
	for filePath := range h.walker.WalkFiles(path, nil) {
		if err := h.hashFile(filePath, hasher); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashFile(path string, mainHasher io.Writer) error {
	writePath(path, mainHasher)

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return nil //nolint:nilerr // Unreadable inputs contribute their path only
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, domain.ErrWriteHashFailed.Error())
	}
	return nil
}

func writePath(path string, w io.Writer) {
	_, _ = io.WriteString(w, pathutil.Key(path))
	_, _ = w.Write([]byte{0})
}
