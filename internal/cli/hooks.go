package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/surveyplot/pkg/observability"
)

// logHooks reports pipeline events at debug level, so --verbose shows load,
// chart and render timings as well as every written file.
type logHooks struct {
	logger *log.Logger
}

// InstallHooks registers the CLI logger as the pipeline and output hooks.
func (c *CLI) InstallHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetPipelineHooks(h)
	observability.SetOutputHooks(h)
}

func (h *logHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("loading table", "path", path)
}

func (h *logHooks) OnLoadComplete(_ context.Context, path string, rows int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("loaded table", "path", path, "rows", rows, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnChartStart(_ context.Context, kind string, questions int) {
	h.logger.Debug("building chart", "kind", kind, "questions", questions)
}

func (h *logHooks) OnChartComplete(_ context.Context, kind string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("chart failed", "kind", kind, "err", err)
		return
	}
	h.logger.Debug("built chart", "kind", kind, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("rendering", "formats", formats)
}

func (h *logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "err", err)
		return
	}
	h.logger.Debug("rendered", "formats", formats, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnFileWritten(_ context.Context, path string, size int) {
	h.logger.Debug("wrote file", "path", path, "bytes", size)
}

func (h *logHooks) OnWriteError(_ context.Context, path string, err error) {
	h.logger.Warn("write failed", "path", path, "err", err)
}
