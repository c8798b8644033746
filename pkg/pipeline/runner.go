package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/surveyplot/pkg/config"
	"github.com/matzehuels/surveyplot/pkg/errors"
	surveyio "github.com/matzehuels/surveyplot/pkg/io"
	"github.com/matzehuels/surveyplot/pkg/observability"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

// Runner executes report pipelines.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options as long as they write to different output directories.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs every selected chart of the config and writes the outputs.
// Cancellation is checked between charts; files already written stay on disk.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: Load
	loadStart := time.Now()
	tbl, err := r.table(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.Rows = tbl.Rows()
	result.Stats.LoadTime = time.Since(loadStart)

	opts.Logger.Info("loaded survey",
		"rows", tbl.Rows(),
		"columns", len(tbl.Names()),
		"duration", result.Stats.LoadTime)

	total := 0
	for _, ch := range opts.Config.Charts {
		if opts.selected(ChartName(ch)) {
			total++
		}
	}
	if total == 0 && len(opts.Only) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidChart, "no chart matches %v", opts.Only)
	}

	if !opts.DryRun {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create output dir %s", opts.OutputDir)
		}
	}

	// Stages 2 and 3 per chart
	buildStart := time.Now()
	for i, ch := range opts.Config.Charts {
		name := ChartName(ch)
		if !opts.selected(name) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if opts.Progress != nil {
			opts.Progress(name, result.Stats.Charts+1, total)
		}

		cr, err := r.Chart(ctx, opts, tbl, ch)
		if err != nil {
			return nil, fmt.Errorf("chart %d (%s): %w", i+1, name, err)
		}
		result.Charts = append(result.Charts, *cr)
		result.Stats.Charts++
		result.Stats.Files += len(cr.Files)
		for _, data := range cr.Artifacts {
			result.Stats.Bytes += len(data)
		}
	}
	result.Stats.BuildTime = time.Since(buildStart)

	if !opts.DryRun && !opts.SkipManifest {
		m := newManifest(result.RunID, opts.Config.Data, tbl.Rows(), opts.Formats, result.Charts, opts.OutputDir)
		path, err := r.writeManifest(ctx, opts.OutputDir, m)
		if err != nil {
			return nil, fmt.Errorf("manifest: %w", err)
		}
		result.Manifest = path
	}

	result.Stats.TotalTime = time.Since(start)
	opts.Logger.Info("report complete",
		"charts", result.Stats.Charts,
		"files", result.Stats.Files,
		"duration", result.Stats.TotalTime)

	return result, nil
}

// Load reads the survey table named by the config.
func (r *Runner) Load(ctx context.Context, cfg *config.Config) (*survey.Table, error) {
	path := cfg.DataPath()
	observability.Pipeline().OnLoadStart(ctx, path)
	start := time.Now()

	tbl, err := surveyio.Import(path, surveyio.Options{Missing: cfg.Missing, Sheet: cfg.Sheet})

	rows := 0
	if tbl != nil {
		rows = tbl.Rows()
	}
	observability.Pipeline().OnLoadComplete(ctx, path, rows, time.Since(start), err)
	return tbl, err
}

// Chart builds, renders and (unless dry-running) writes a single chart.
func (r *Runner) Chart(ctx context.Context, opts Options, tbl *survey.Table, ch config.Chart) (*ChartResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	name := ChartName(ch)
	if err := errors.ValidateFileName(name); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnChartStart(ctx, ch.Kind, len(ch.Questions))
	start := time.Now()
	fig, summary, err := Build(opts.Config, tbl, ch)
	hooks.OnChartComplete(ctx, ch.Kind, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	cr := &ChartResult{
		Name:      name,
		Kind:      ch.Kind,
		Questions: ch.Questions,
		Summary:   summary,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}

	hooks.OnRenderStart(ctx, opts.Formats)
	start = time.Now()
	for _, format := range opts.Formats {
		data, err := fig.Render(format)
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		cr.Artifacts[format] = data
	}
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)

	opts.Logger.Debug("rendered chart",
		"chart", name,
		"kind", ch.Kind,
		"panels", fig.Panels(),
		"formats", opts.Formats)

	if opts.DryRun {
		return cr, nil
	}
	for _, format := range opts.Formats {
		path := filepath.Join(opts.OutputDir, name+"."+format)
		if err := writeFile(ctx, path, cr.Artifacts[format]); err != nil {
			return nil, err
		}
		cr.Files = append(cr.Files, path)
		opts.Logger.Info("wrote chart", "path", path)
	}
	return cr, nil
}

func (r *Runner) table(ctx context.Context, opts Options) (*survey.Table, error) {
	if opts.Table != nil {
		return opts.Table, nil
	}
	return r.Load(ctx, opts.Config)
}

func (r *Runner) writeManifest(ctx context.Context, dir string, m Manifest) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ManifestFile)
	if err := writeFile(ctx, path, data); err != nil {
		return "", err
	}
	return path, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func writeFile(ctx context.Context, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		observability.Output().OnWriteError(ctx, path, err)
		return fmt.Errorf("write %s: %w", path, err)
	}
	observability.Output().OnFileWritten(ctx, path, len(data))
	return nil
}
