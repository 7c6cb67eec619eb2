// Package app implements the application layer for seer.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	fsadapter "go.trai.ch/seer/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/seer/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/seer/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/seer/internal/adapters/tui"                //nolint:depguard // Wired in app layer
	"go.trai.ch/seer/internal/core/domain"
	"go.trai.ch/seer/internal/core/ports"
	"go.trai.ch/seer/internal/engine/predictor"
	"go.trai.ch/seer/internal/predictors"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	projects   ports.ProjectLoader
	settings   ports.SettingsLoader
	fs         ports.FileSystem
	hasher     ports.Hasher
	logger     ports.Logger
	progress   io.Writer
	workDir    string
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	projects ports.ProjectLoader,
	settings ports.SettingsLoader,
	fs ports.FileSystem,
	hasher ports.Hasher,
	log ports.Logger,
) *App {
	return &App{
		projects: projects,
		settings: settings,
		fs:       fs,
		hasher:   hasher,
		logger:   log,
		progress: os.Stderr,
		workDir:  ".",
	}
}

// WithProgressOutput redirects the progress stream enabled by PredictOptions.Progress.
func (a *App) WithProgressOutput(w io.Writer) *App {
	a.progress = w
	return a
}

// WithWorkDir sets the directory the settings file is read from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithTeaOptions adds bubbletea program options used by the prediction browser.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// SetJSONLog switches the logger to JSON output when it supports it.
func (a *App) SetJSONLog(enabled bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enabled)
	}
}

// PredictOptions configures the Predict method. Zero values fall back to the settings file.
type PredictOptions struct {
	Format      string
	All         bool
	Parallelism int
	Disabled    []string
	Hash        bool
	Progress    bool
	Inspect     bool
}

// Predict loads the project at path with its references, predicts its inputs and
// outputs, and renders the result to out. With All set, every project of the
// reference graph is predicted. With Inspect set, the predictions are shown in an
// interactive browser instead.
func (a *App) Predict(ctx context.Context, path string, opts PredictOptions, out io.Writer) error {
	if opts.Parallelism < 0 {
		return zerr.With(domain.ErrInvalidParallelism, "parallelism", opts.Parallelism)
	}

	settings, err := a.settings.Load(a.workDir)
	if err != nil {
		return err
	}

	format, err := resolveFormat(opts.Format, settings.Format)
	if err != nil {
		return err
	}

	registry, err := a.registry(settings, opts.Disabled)
	if err != nil {
		return err
	}

	graph, err := a.projects.Load(path)
	if err != nil {
		return err
	}

	tel := a.telemetry(opts.Progress)
	engine := predictor.NewEngine(registry, a.logger, tel)

	var predictions []*domain.Prediction
	if opts.All {
		parallelism := opts.Parallelism
		if parallelism == 0 {
			parallelism = settings.Parallelism
		}
		predictions, err = engine.PredictGraph(ctx, graph, parallelism)
	} else {
		predictions = []*domain.Prediction{engine.PredictNode(ctx, graph.EntryNode())}
	}
	if closeErr := tel.Close(); err == nil && closeErr != nil {
		a.logger.Warn("failed to close progress output: " + closeErr.Error())
	}
	if err != nil {
		return err
	}

	reports := make([]report, 0, len(predictions))
	for _, p := range predictions {
		if p.IsEmpty() {
			a.logger.Warn("no inputs or outputs predicted for " + p.Project)
		}
		r := report{Prediction: p}
		if opts.Hash {
			hash, err := a.hasher.ComputeInputHash(p)
			if err != nil {
				return zerr.With(err, "project", p.Project)
			}
			r.InputHash = hash
		}
		reports = append(reports, r)
	}

	if opts.Inspect {
		return a.inspect(ctx, reports)
	}

	if err := render(out, format, reports); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

// ListPredictors writes the registered predictors to out, honouring the predictors
// disabled in the settings file.
func (a *App) ListPredictors(_ context.Context, out io.Writer) error {
	settings, err := a.settings.Load(a.workDir)
	if err != nil {
		return err
	}

	registry, err := a.registry(settings, nil)
	if err != nil {
		return err
	}

	if err := renderPredictors(out, registry.Entries()); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

func (a *App) inspect(ctx context.Context, reports []report) error {
	pages := make([]tui.Page, 0, len(reports))
	for _, r := range reports {
		var body strings.Builder
		if err := renderText(&body, []report{r}); err != nil {
			return zerr.Wrap(err, domain.ErrRenderFailed.Error())
		}
		pages = append(pages, tui.Page{
			Title:  filepath.Base(r.Project),
			Body:   body.String(),
			Failed: len(r.Failures) > 0,
		})
	}
	return tui.Run(ctx, pages, a.teaOptions...)
}

// registry builds the predictor registry for one run. Existence checks go through a
// bounded cache when the settings ask for one.
func (a *App) registry(settings domain.Settings, disabled []string) (*predictors.Registry, error) {
	fsys := a.fs
	if settings.StatCacheSize > 0 {
		cached, err := fsadapter.NewCachedFileSystem(a.fs, settings.StatCacheSize)
		if err != nil {
			return nil, err
		}
		fsys = cached
	}

	names := append(append([]string(nil), settings.DisabledPredictors...), disabled...)
	return predictors.Default(fsys).Without(names...)
}

func (a *App) telemetry(progress bool) ports.Telemetry {
	if progress {
		return progrock.NewProgress(a.progress)
	}
	return telemetry.NewNoOp()
}

func resolveFormat(flag, configured string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flag))
	if format == "" {
		format = configured
	}
	if format == "" {
		format = domain.FormatText
	}

	switch format {
	case domain.FormatText, domain.FormatJSON:
		return format, nil
	default:
		return "", zerr.With(domain.ErrUnknownOutputFormat, "format", format)
	}
}
