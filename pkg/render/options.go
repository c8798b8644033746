package render

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Default sizes and labels.
const (
	DefaultBarWidth       = 6 * vg.Inch
	DefaultBarHeight      = 0.6 * vg.Inch
	DefaultLikertWidth    = 8 * vg.Inch
	DefaultStackedHeight  = 1.2 * vg.Inch
	DefaultDivergeHeight  = 1.1 * vg.Inch
	DefaultMeanHeight     = 1.2 * vg.Inch
	DefaultTickWidth      = 40
	DefaultMeanTickWidth  = 30
	DefaultScaleTickWidth = 10
	TitleWidth            = 80

	CountLabel   = "Number of respondents"
	PercentLabel = "Share of respondents in %"
)

// Option configures a chart builder.
type Option func(*renderer)

type renderer struct {
	xlabel    string
	width     vg.Length
	barHeight vg.Length
	tickWidth int
	color     color.Color
	titles    func(key string) string
	emphasize bool
}

// WithXLabel sets the value-axis label.
func WithXLabel(s string) Option { return func(r *renderer) { r.xlabel = s } }

// WithWidth sets the figure width.
func WithWidth(w vg.Length) Option { return func(r *renderer) { r.width = w } }

// WithBarHeight sets the height reserved per bar or per panel.
func WithBarHeight(h vg.Length) Option { return func(r *renderer) { r.barHeight = h } }

// WithTickWidth sets the wrap width, in characters, of category tick labels.
func WithTickWidth(n int) Option { return func(r *renderer) { r.tickWidth = n } }

// WithColor sets the fill of single-series bar charts.
func WithColor(c color.Color) Option { return func(r *renderer) { r.color = c } }

// WithTitles maps column keys to display titles. Keys without a title are
// shown as-is.
func WithTitles(f func(key string) string) Option { return func(r *renderer) { r.titles = f } }

// WithEmphasis draws the first panel title in bold, for diagrams that continue
// a figure whose headline is already set.
func WithEmphasis() Option { return func(r *renderer) { r.emphasize = true } }

func newRenderer(defaults renderer, opts ...Option) renderer {
	r := defaults
	for _, opt := range opts {
		opt(&r)
	}
	if r.width <= 0 {
		r.width = defaults.width
	}
	if r.barHeight <= 0 {
		r.barHeight = defaults.barHeight
	}
	if r.tickWidth <= 0 {
		r.tickWidth = defaults.tickWidth
	}
	if r.titles == nil {
		r.titles = func(key string) string { return key }
	}
	return r
}

func (r renderer) title(key string) string {
	if t := r.titles(key); t != "" {
		return t
	}
	return key
}
