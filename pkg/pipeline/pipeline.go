// Package pipeline runs survey reports: load → aggregate → render → write.
//
// This package implements the complete report pipeline used by the CLI. By
// centralizing this logic, the report, chart and summary commands share the
// same chart construction and the same validation.
//
// # Architecture
//
// The pipeline consists of three stages per chart:
//
//  1. Load: Read the survey table (CSV or XLSX) named by the config
//  2. Build: Aggregate the chart's questions and build a figure
//  3. Render: Encode the figure in every requested format and write it
//
// After all charts are written, a manifest.json records the run id, the
// generated files and the headline numbers of every chart.
//
// # Usage
//
//	cfg, err := config.Load("survey.toml")
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Config: cfg})
//	for _, c := range result.Charts {
//	    fmt.Println(c.Files)
//	}
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/surveyplot/pkg/config"
	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/render"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

// Chart kinds.
const (
	KindFrequency  = "frequency"
	KindPercentage = "percentage"
	KindSplit      = "split"
	KindLikert     = "likert"
	KindDiverging  = "diverging"
	KindMean       = "mean"
)

// Kinds lists the supported chart kinds in documentation order.
var Kinds = []string{KindFrequency, KindPercentage, KindSplit, KindLikert, KindDiverging, KindMean}

// ManifestFile is the name of the run manifest in the output directory.
const ManifestFile = "manifest.json"

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a report run.
type Options struct {
	// Config is the report definition. Required.
	Config *config.Config

	// Table is the survey data. When nil it is loaded from Config.DataPath.
	Table *survey.Table

	// OutputDir and Formats override the config values when set.
	OutputDir string
	Formats   []string

	// Only restricts the run to charts whose file name is listed.
	Only []string

	// DryRun builds and renders every chart without writing files.
	DryRun bool

	// SkipManifest disables writing manifest.json.
	SkipManifest bool

	// Logger receives progress messages; discarded when nil.
	Logger *log.Logger

	// Progress, when set, is called before each chart with its name, its
	// position among the selected charts and their total.
	Progress func(name string, index, total int)

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a report run.
type Result struct {
	// RunID identifies the run in the manifest.
	RunID string

	// Charts holds one entry per executed chart, in config order.
	Charts []ChartResult

	// Manifest is the path of the written manifest, empty when skipped.
	Manifest string

	// Stats contains timing and size information.
	Stats Stats
}

// ChartResult is the outcome of one chart.
type ChartResult struct {
	Name      string
	Kind      string
	Questions []string
	Summary   []RowSummary
	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte
	// Files lists the written paths, empty on dry runs.
	Files []string
}

// RowSummary holds the headline numbers of one question in a chart.
type RowSummary struct {
	Key       string   `json:"key"`
	N         int      `json:"n"`
	Agree     *int     `json:"agree,omitempty"`
	Uncertain *int     `json:"uncertain,omitempty"`
	Disagree  *int     `json:"disagree,omitempty"`
	Mean      *float64 `json:"mean,omitempty"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows      int
	Charts    int
	Files     int
	Bytes     int
	LoadTime  time.Duration
	BuildTime time.Duration
	TotalTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is one of [render.Formats].
func ValidateFormat(format string) error {
	return render.ValidateFormat(format)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateKind checks that a chart kind is known.
func ValidateKind(kind string) error {
	if !slices.Contains(Kinds, kind) {
		return errors.New(errors.ErrCodeInvalidChart,
			"invalid chart kind: %q (must be one of: frequency, percentage, split, likert, diverging, mean)", kind)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Config == nil {
		return errors.New(errors.ErrCodeInvalidConfig, "config is required")
	}
	if o.Table == nil && o.Config.Data == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "data file is required")
	}

	if o.OutputDir == "" {
		o.OutputDir = o.Config.OutputPath()
	}
	if o.OutputDir == "" {
		o.OutputDir = config.DefaultOutputDir
	}
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(o.Config.Formats)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{config.DefaultFormat}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	for i, ch := range o.Config.Charts {
		if err := ValidateKind(ch.Kind); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidChart, err, "chart %d", i+1)
		}
	}
	o.validated = true
	return nil
}

// selected reports whether a chart with the given name should run.
func (o *Options) selected(name string) bool {
	return len(o.Only) == 0 || slices.Contains(o.Only, name)
}
