package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/surveyplot/pkg/config"
	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/observability"
)

const testCSV = `requirements_rel,open_rel,dependencies_rel,tools
Moderately relevant,Relevant,Very relevant,Python;R
Slightly relevant,Moderately relevant,Slightly relevant,Python
Relevant,Relevant,Moderately relevant,NA
`

const testConfig = `
formats = ["json", "svg"]

[questions.requirements_rel]
title    = "In your view, how relevant are requirements engineering practices?"
short    = "Requirements engineering"
category = "Model development"

[questions.open_rel]
title    = "How relevant are open-source practices?"
short    = "Open-source practices"
category = "Versioning and collaboration"

[[charts]]
kind      = "diverging"
scale     = "relevant"
questions = ["requirements_rel", "open_rel", "dependencies_rel"]
file      = "relevance"

[[charts]]
kind      = "mean"
scale     = "relevant"
questions = ["requirements_rel", "open_rel", "dependencies_rel"]

[[charts]]
kind      = "split"
separator = ";"
percent   = true
questions = ["tools"]
file      = "tools"
`

func setup(t *testing.T) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "survey.csv")
	if err := os.WriteFile(data, []byte(testCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Parse([]byte(`data = "` + filepath.ToSlash(data) + `"` + testConfig))
	if err != nil {
		t.Fatalf("config.Parse() error: %v", err)
	}
	return cfg, filepath.Join(dir, "figures")
}

func TestRunnerExecute(t *testing.T) {
	cfg, out := setup(t)

	result, err := NewRunner(nil).Execute(context.Background(), Options{Config: cfg, OutputDir: out})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Stats.Rows != 3 {
		t.Errorf("Rows = %d, want 3", result.Stats.Rows)
	}
	if result.Stats.Charts != 3 || result.Stats.Files != 6 {
		t.Errorf("Charts/Files = %d/%d, want 3/6", result.Stats.Charts, result.Stats.Files)
	}
	for _, name := range []string{"relevance.svg", "relevance.json", "mean-requirements_rel.svg", "tools.json", ManifestFile} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}

	div := result.Charts[0]
	if got := div.Summary[0]; *got.Agree != 33 || *got.Uncertain != 33 || *got.Disagree != 34 {
		t.Errorf("requirements_rel shares = %d/%d/%d, want 33/33/34", *got.Agree, *got.Uncertain, *got.Disagree)
	}
	if svg := string(div.Artifacts["svg"]); !strings.Contains(svg, "<svg") {
		t.Error("svg artifact is not an SVG document")
	}

	mean := result.Charts[1]
	if mean.Summary[0].Key != "open_rel" {
		t.Errorf("highest mean = %s, want open_rel", mean.Summary[0].Key)
	}

	m, err := ReadManifest(result.Manifest)
	if err != nil {
		t.Fatalf("ReadManifest() error: %v", err)
	}
	if m.RunID != result.RunID || len(m.Charts) != 3 {
		t.Errorf("manifest = %s with %d charts", m.RunID, len(m.Charts))
	}
	if m.Charts[2].Files[0] != "tools.json" {
		t.Errorf("manifest files should be relative, got %v", m.Charts[2].Files)
	}
}

func TestRunnerBoldFirstAllFormats(t *testing.T) {
	cfg, out := setup(t)
	cfg.Charts[0].BoldFirst = true

	result, err := NewRunner(nil).Execute(context.Background(), Options{
		Config:    cfg,
		OutputDir: out,
		Formats:   []string{"svg", "png", "pdf", "json"},
		Only:      []string{"relevance"},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, name := range []string{"relevance.svg", "relevance.png", "relevance.pdf", "relevance.json"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
	if pdf := result.Charts[0].Artifacts["pdf"]; !strings.HasPrefix(string(pdf), "%PDF") {
		t.Error("pdf artifact is not a PDF document")
	}
}

func TestRunnerDryRunAndOnly(t *testing.T) {
	cfg, out := setup(t)

	result, err := NewRunner(nil).Execute(context.Background(), Options{
		Config:    cfg,
		OutputDir: out,
		Only:      []string{"tools"},
		DryRun:    true,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Charts) != 1 || result.Charts[0].Name != "tools" {
		t.Fatalf("Charts = %+v", result.Charts)
	}
	if len(result.Charts[0].Files) != 0 || result.Manifest != "" {
		t.Error("dry run should not write files")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output dir should not exist on dry run: %v", err)
	}

	_, err = NewRunner(nil).Execute(context.Background(), Options{Config: cfg, Only: []string{"nope"}, DryRun: true})
	if !errors.Is(err, errors.ErrCodeInvalidChart) {
		t.Errorf("Execute(only=nope) error = %v, want INVALID_CHART", err)
	}
}

func TestRunnerErrors(t *testing.T) {
	cfg, out := setup(t)
	cfg.Charts = []config.Chart{{Kind: "frequency", Questions: []string{"missing_column"}}}

	_, err := NewRunner(nil).Execute(context.Background(), Options{Config: cfg, OutputDir: out})
	if !errors.Is(err, errors.ErrCodeColumnNotFound) {
		t.Errorf("Execute() error = %v, want COLUMN_NOT_FOUND", err)
	}

	cfg.Charts = []config.Chart{{Kind: "frequency", Questions: []string{"open_rel", "tools"}}}
	_, err = NewRunner(nil).Execute(context.Background(), Options{Config: cfg, OutputDir: out})
	if !errors.Is(err, errors.ErrCodeInvalidChart) {
		t.Errorf("Execute() error = %v, want INVALID_CHART", err)
	}

	cfg.Charts = []config.Chart{{Kind: "diverging", Scale: "relevant", Questions: []string{"open_rel"}}}
	cfg.Scales = map[string]config.Scale{"relevant": {Labels: []string{"No", "Yes"}}}
	_, err = NewRunner(nil).Execute(context.Background(), Options{Config: cfg, OutputDir: out})
	if !errors.Is(err, errors.ErrCodeInvalidScaleLength) {
		t.Errorf("Execute() error = %v, want INVALID_SCALE_LENGTH", err)
	}
}

func TestRunnerCancelled(t *testing.T) {
	cfg, out := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewRunner(nil).Execute(ctx, Options{Config: cfg, OutputDir: out}); err != context.Canceled {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

type countingHooks struct {
	observability.NoopPipelineHooks
	charts int
	loads  int
}

func (h *countingHooks) OnChartComplete(context.Context, string, time.Duration, error) { h.charts++ }
func (h *countingHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {
	h.loads++
}

func TestRunnerHooks(t *testing.T) {
	cfg, out := setup(t)
	hooks := &countingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	if _, err := NewRunner(nil).Execute(context.Background(), Options{Config: cfg, OutputDir: out, DryRun: true}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if hooks.loads != 1 || hooks.charts != 3 {
		t.Errorf("hooks: loads=%d charts=%d, want 1/3", hooks.loads, hooks.charts)
	}
}

func TestRunnerProgress(t *testing.T) {
	cfg, out := setup(t)

	var calls []string
	opts := Options{
		Config:    cfg,
		OutputDir: out,
		DryRun:    true,
		Only:      []string{"relevance", "tools"},
		Progress: func(name string, index, total int) {
			calls = append(calls, fmt.Sprintf("%s %d/%d", name, index, total))
		},
	}
	if _, err := NewRunner(nil).Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	want := "relevance 1/2,tools 2/2"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("progress = %q, want %q", got, want)
	}
}
