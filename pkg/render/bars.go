package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/likert"
	"github.com/matzehuels/surveyplot/pkg/palette"
)

// barFill is the share of the bar slot a bar occupies.
const barFill = 0.75

// Bars draws a horizontal bar per answer, smallest count at the bottom.
// With percent set, values are shares of c.Total; otherwise raw counts.
// The title gets the sample size c.Total appended.
func Bars(c likert.Counts, title string, percent bool, opts ...Option) (*Figure, error) {
	if len(c.Items) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s: no answers to plot", c.Key)
	}

	xlabel := CountLabel
	values := c.Values()
	if percent {
		xlabel = PercentLabel
		values = c.Percent()
	}
	r := newRenderer(renderer{
		xlabel:    xlabel,
		width:     DefaultBarWidth,
		barHeight: DefaultBarHeight,
		tickWidth: DefaultTickWidth,
	}, opts...)

	fill := r.color
	if fill == nil {
		fill, _ = palette.ParseColor(palette.DefaultBar)
	}

	bars, err := plotter.NewBarChart(plotter.Values(values), r.barHeight*barFill)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: bar chart", c.Key)
	}
	bars.Horizontal = true
	bars.Color = fill
	bars.LineStyle.Width = 0

	p := plot.New()
	p.Title.Text = headline(title, c.Total)
	p.X.Label.Text = r.xlabel
	p.Add(bars)
	p.NominalY(wrapAll(c.Labels(), r.tickWidth)...)
	p.X.Min = 0

	layout := Layout{
		Kind:   "bars",
		Title:  p.Title.Text,
		XMin:   0,
		XMax:   p.X.Max,
		XLabel: r.xlabel,
		Rows:   make([]Row, len(values)),
	}
	hex := palette.Hex(fill)
	for i, it := range c.Items {
		layout.Rows[i] = Row{
			Key:      it.Label,
			Label:    it.Label,
			N:        it.Count,
			Segments: []Segment{{Start: 0, End: values[i], Color: hex}},
		}
	}

	h := r.barHeight*vg.Length(len(values)) + headroom
	return newFigure(layout, r.width, h, p), nil
}
