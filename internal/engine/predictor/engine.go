package predictor

import (
	"context"
	"fmt"
	"runtime"

	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Predictors provides the ordered predictor lists run by the Engine.
type Predictors interface {
	ProjectPredictors() []ports.ProjectPredictor
	GraphPredictors() []ports.GraphPredictor
}

// Engine runs every registered predictor over project graph nodes.
type Engine struct {
	predictors Predictors
	logger     ports.Logger
	telemetry  ports.Telemetry
}

// NewEngine creates an Engine. Failures of individual predictors are reported to log
// and recorded on the prediction; tel receives one vertex per predicted project.
func NewEngine(predictors Predictors, log ports.Logger, tel ports.Telemetry) *Engine {
	return &Engine{
		predictors: predictors,
		logger:     log,
		telemetry:  tel,
	}
}

// PredictNode runs every project predictor over the node's project, then every graph
// predictor over the node, and merges their reports.
//
// A predictor that returns an error or panics does not stop the others. What it
// reported before failing is kept and the failure is recorded on the prediction.
func (e *Engine) PredictNode(ctx context.Context, node ports.ProjectGraphNode) *domain.Prediction {
	project := node.Project()
	_, vertex := e.telemetry.Record(ctx, project.FullPath())

	collector := NewCollector(project.Directory())
	var failures []domain.PredictorFailure

	fail := func(name string, err error) {
		e.logger.Error(err)
		vertex.Log(domain.LogLevelWarn, fmt.Sprintf("%s failed: %v", name, err))
		failures = append(failures, domain.PredictorFailure{Predictor: name, Err: err})
	}

	for _, p := range e.predictors.ProjectPredictors() {
		reporter := collector.For(p.Name())
		if err := invoke(p.Name(), project.FullPath(), func() error {
			return p.PredictInputsAndOutputs(project, reporter)
		}); err != nil {
			fail(p.Name(), err)
		}
	}

	for _, p := range e.predictors.GraphPredictors() {
		reporter := collector.For(p.Name())
		if err := invoke(p.Name(), project.FullPath(), func() error {
			return p.PredictInputsAndOutputs(node, reporter)
		}); err != nil {
			fail(p.Name(), err)
		}
	}

	prediction := collector.Result(project.FullPath(), failures)
	_, _ = fmt.Fprintf(vertex.Stdout(), "%d inputs, %d outputs\n",
		len(prediction.InputFiles)+len(prediction.InputDirectories),
		len(prediction.OutputFiles)+len(prediction.OutputDirectories))
	vertex.Complete(nil)
	return prediction
}

// invoke runs predict, turning a returned error or a panic into a predictor failure.
func invoke(name, project string, predict func() error) (err error) {
	defer zerr.Defer(func(recovered error) {
		err = zerr.With(zerr.With(zerr.Wrap(recovered, domain.ErrPredictorPanicked.Error()), "predictor", name), "project", project)
	})

	if perr := predict(); perr != nil {
		return zerr.With(zerr.With(zerr.Wrap(perr, domain.ErrPredictorFailed.Error()), "predictor", name), "project", project)
	}
	return nil
}

// PredictGraph predicts every node of graph, at most parallelism at a time, and returns
// the predictions in graph order. A parallelism of zero or less uses one worker per CPU.
// Only cancellation of ctx is returned as an error.
func (e *Engine) PredictGraph(ctx context.Context, graph ports.ProjectGraph, parallelism int) ([]*domain.Prediction, error) {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	nodes := graph.Nodes()
	results := make([]*domain.Prediction, len(nodes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, node := range nodes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.PredictNode(gctx, node)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
