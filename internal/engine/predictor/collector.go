// Package predictor runs predictors over evaluated projects and merges what they report.
package predictor

import (
	"sort"
	"strings"
	"sync"

	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/pathutil"
	"go.trai.ch/seer/internal/core/ports"
)

type bucketKind int

const (
	inputFiles bucketKind = iota
	inputDirectories
	outputFiles
	outputDirectories
	bucketCount
)

type entry struct {
	path string
	by   []domain.InternedString
}

// Collector merges the reports of every predictor run over one project. Paths are made
// absolute against the project directory and de-duplicated by pathutil.Key.
// Collector is safe for concurrent use.
type Collector struct {
	dir string

	mu      sync.Mutex
	buckets [bucketCount]map[string]*entry
}

// NewCollector creates a Collector resolving relative paths against projectDir.
func NewCollector(projectDir string) *Collector {
	c := &Collector{dir: projectDir}
	for i := range c.buckets {
		c.buckets[i] = make(map[string]*entry)
	}
	return c
}

// For returns a reporter tagging every path with the predictor name.
func (c *Collector) For(predictor string) ports.Reporter {
	return &taggedReporter{collector: c, predictor: domain.NewInternedString(predictor)}
}

func (c *Collector) add(kind bucketKind, path string, predictor domain.InternedString) {
	if strings.TrimSpace(path) == "" {
		return
	}
	abs := pathutil.Normalize(path, c.dir)
	key := pathutil.Key(abs)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.buckets[kind][key]
	if !ok {
		c.buckets[kind][key] = &entry{path: abs, by: []domain.InternedString{predictor}}
		return
	}
	for _, name := range e.by {
		if name == predictor {
			return
		}
	}
	e.by = append(e.by, predictor)
}

// Result returns the merged prediction for project.
func (c *Collector) Result(project string, failures []domain.PredictorFailure) *domain.Prediction {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &domain.Prediction{
		Project:           project,
		InputFiles:        c.sorted(inputFiles),
		InputDirectories:  c.sorted(inputDirectories),
		OutputFiles:       c.sorted(outputFiles),
		OutputDirectories: c.sorted(outputDirectories),
		Failures:          append([]domain.PredictorFailure(nil), failures...),
	}
}

func (c *Collector) sorted(kind bucketKind) []domain.PredictedPath {
	bucket := c.buckets[kind]
	keys := make([]string, 0, len(bucket))
	for k := range bucket {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]domain.PredictedPath, len(keys))
	for i, k := range keys {
		e := bucket[k]
		out[i] = domain.PredictedPath{
			Path:        e.path,
			PredictedBy: append([]domain.InternedString(nil), e.by...),
		}
	}
	return out
}

type taggedReporter struct {
	collector *Collector
	predictor domain.InternedString
}

func (r *taggedReporter) ReportInputFile(path string) {
	r.collector.add(inputFiles, path, r.predictor)
}

func (r *taggedReporter) ReportInputDirectory(path string) {
	r.collector.add(inputDirectories, path, r.predictor)
}

func (r *taggedReporter) ReportOutputFile(path string) {
	r.collector.add(outputFiles, path, r.predictor)
}

func (r *taggedReporter) ReportOutputDirectory(path string) {
	r.collector.add(outputDirectories, path, r.predictor)
}
