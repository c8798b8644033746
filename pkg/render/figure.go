package render

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/surveyplot/pkg/errors"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// headroom is added to the bar-height based figure height for the title and
// the value axis.
const headroom = 0.9 * vg.Inch

// panelPad separates stacked panels.
const panelPad = 0.15 * vg.Inch

// Figure is a rendered chart: one or more vertically stacked plots.
type Figure struct {
	Width  vg.Length
	Height vg.Length
	Layout Layout

	panels [][]*plot.Plot
}

func newFigure(layout Layout, w, h vg.Length, plots ...*plot.Plot) *Figure {
	panels := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		panels[i] = []*plot.Plot{p}
	}
	layout.Width = w.Points()
	layout.Height = h.Points()
	return &Figure{Width: w, Height: h, Layout: layout, panels: panels}
}

// Panels returns the number of stacked plots.
func (f *Figure) Panels() int { return len(f.panels) }

// ValidateFormat returns INVALID_FORMAT for formats outside [Formats].
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (valid: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// Render encodes the figure. It must not be called concurrently on the same
// figure.
func (f *Figure) Render(format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if format == FormatJSON {
		return json.MarshalIndent(f.Layout, "", "  ")
	}

	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "create %s canvas", format)
	}

	if format == FormatPDF {
		defer usePDFFonts(f.panels)()
	}

	tiles := draw.Tiles{Rows: len(f.panels), Cols: 1, PadY: panelPad, PadTop: panelPad, PadBottom: panelPad}
	canvases := plot.Align(f.panels, tiles, draw.New(c))
	for i, row := range f.panels {
		for j, p := range row {
			p.Draw(canvases[i][j])
		}
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
	}
	return buf.Bytes(), nil
}
