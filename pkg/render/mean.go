package render

import (
	"image/color"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/likert"
	"github.com/matzehuels/surveyplot/pkg/palette"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

// Means draws one bar per question at its mean scale position, highest mean
// on top. The value axis is labelled with the scale. When scores carry
// categories, bars are colored per category and a legend is added.
func Means(scores []likert.Score, scale survey.Scale, opts ...Option) (*Figure, error) {
	if err := scale.Validate(); err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no scores to plot")
	}

	r := newRenderer(renderer{
		width:     DefaultBarWidth,
		barHeight: DefaultMeanHeight,
		tickWidth: DefaultMeanTickWidth,
	}, opts...)

	// NominalY draws index 0 at the bottom.
	ranked := likert.Rank(scores)
	slices.Reverse(ranked)

	var categories []string
	for _, s := range ranked {
		if s.Category != "" && !slices.Contains(categories, s.Category) {
			categories = append(categories, s.Category)
		}
	}
	// Walking the reversed order collects categories bottom-up; the legend
	// reads top-down.
	slices.Reverse(categories)

	fill := r.color
	if fill == nil {
		fill, _ = palette.ParseColor(palette.DefaultBar)
	}
	catColors, err := palette.Categorical(len(categories))
	if err != nil {
		return nil, err
	}
	colorOf := func(category string) color.Color {
		if i := slices.Index(categories, category); i >= 0 {
			return catColors[i]
		}
		return fill
	}

	p := plot.New()
	p.X.Label.Text = r.xlabel
	layout := Layout{
		Kind:   "mean",
		XMin:   0,
		XMax:   float64(scale.Len() - 1),
		XLabel: r.xlabel,
		Rows:   make([]Row, len(ranked)),
	}

	groups := append([]string{""}, categories...)
	for _, g := range groups {
		values := make(plotter.Values, len(ranked))
		found := false
		for i, s := range ranked {
			if s.Category == g || (g == "" && !slices.Contains(categories, s.Category)) {
				values[i] = s.Mean
				found = true
			}
		}
		if !found {
			continue
		}
		bars, err := plotter.NewBarChart(values, r.barHeight*barFill)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "mean bar chart")
		}
		bars.Horizontal = true
		bars.Color = colorOf(g)
		bars.LineStyle.Width = 0
		p.Add(bars)
		if g != "" {
			p.Legend.Add(g, bars)
		}
	}

	titles := make([]string, len(ranked))
	for i, s := range ranked {
		titles[i] = r.title(s.Key)
		layout.Rows[i] = Row{
			Key:      s.Key,
			Label:    titles[i],
			N:        s.N,
			Segments: []Segment{{Label: s.Category, Start: 0, End: s.Mean, Color: palette.Hex(colorOf(s.Category))}},
		}
	}
	p.NominalY(wrapAll(titles, r.tickWidth)...)

	ticks := make(plot.ConstantTicks, scale.Len())
	for i, label := range scale.Labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: wrap(label, DefaultScaleTickWidth)}
	}
	p.X.Tick.Marker = ticks
	p.X.Min, p.X.Max = layout.XMin, layout.XMax
	if len(categories) > 0 {
		p.Legend.Top = true
	}
	for _, c := range categories {
		layout.Legend = append(layout.Legend, LegendEntry{Label: c, Color: palette.Hex(colorOf(c))})
	}

	h := r.barHeight*vg.Length(len(ranked)) + headroom
	return newFigure(layout, r.width, h, p), nil
}
