// Package predictortest provides a recording reporter for predictor tests.
package predictortest

import (
	"sort"
	"sync"

	"go.trai.ch/seer/internal/core/ports"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter records every reported path verbatim, per bucket.
type Reporter struct {
	mu                sync.Mutex
	InputFiles        []string
	InputDirectories  []string
	OutputFiles       []string
	OutputDirectories []string
}

// ReportInputFile records an input file.
func (r *Reporter) ReportInputFile(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.InputFiles = append(r.InputFiles, path)
}

// ReportInputDirectory records an input directory.
func (r *Reporter) ReportInputDirectory(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.InputDirectories = append(r.InputDirectories, path)
}

// ReportOutputFile records an output file.
func (r *Reporter) ReportOutputFile(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.OutputFiles = append(r.OutputFiles, path)
}

// ReportOutputDirectory records an output directory.
func (r *Reporter) ReportOutputDirectory(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.OutputDirectories = append(r.OutputDirectories, path)
}

// Sorted returns a sorted copy of paths, for order-insensitive assertions.
func Sorted(paths []string) []string {
	out := append([]string(nil), paths...)
	sort.Strings(out)
	return out
}
