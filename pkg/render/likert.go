package render

import (
	"fmt"
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/likert"
	"github.com/matzehuels/surveyplot/pkg/palette"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

// panelFill is the share of the panel height a Likert bar occupies.
const panelFill = 0.4

// divergingTicks are labelled by distance from zero.
var divergingTicks = plot.ConstantTicks{
	{Value: -100, Label: "100"},
	{Value: -75, Label: "75"},
	{Value: -50, Label: "50"},
	{Value: -25, Label: "25"},
	{Value: 0, Label: "0"},
	{Value: 25, Label: "25"},
	{Value: 50, Label: "50"},
	{Value: 75, Label: "75"},
	{Value: 100, Label: "100"},
}

// Likert draws one panel per question of d, sharing the value axis and a
// single legend on the first panel. Diverging diagrams split each bar around
// zero and annotate the rounded disagree, uncertain and agree shares.
// colors must hold one color per scale label.
func Likert(d likert.Diagram, colors []color.Color, opts ...Option) (*Figure, error) {
	if len(d.Panels) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "likert diagram has no panels")
	}
	if len(colors) != d.Scale.Len() {
		return nil, errors.New(errors.ErrCodeColorCountMismatch,
			"scale %q has %d labels but %d colors were given", d.Scale.Name, d.Scale.Len(), len(colors))
	}

	kind, height := "stacked", DefaultStackedHeight
	if d.Diverging {
		kind, height = "diverging", DefaultDivergeHeight
	}
	r := newRenderer(renderer{
		xlabel:    PercentLabel,
		width:     DefaultLikertWidth,
		barHeight: height,
	}, opts...)

	layout := Layout{
		Kind:   kind,
		XMin:   d.XMin,
		XMax:   d.XMax,
		XLabel: r.xlabel,
		Legend: make([]LegendEntry, d.Scale.Len()),
		Rows:   make([]Row, len(d.Panels)),
	}
	for j, label := range d.Scale.Labels {
		layout.Legend[j] = LegendEntry{Label: label, Color: palette.Hex(colors[j])}
	}

	plots := make([]*plot.Plot, len(d.Panels))
	for i, panel := range d.Panels {
		var (
			p      *plot.Plot
			row    Row
			thumbs []plot.Thumbnailer
			err    error
		)
		if d.Diverging {
			p, row, thumbs, err = divergingPanel(panel, d.Scale, colors, r.barHeight*panelFill)
		} else {
			p, row, thumbs, err = stackedPanel(panel, d.Scale, colors, r.barHeight*panelFill)
		}
		if err != nil {
			return nil, fmt.Errorf("panel %s: %w", panel.Key, err)
		}

		p.Title.Text = headline(r.title(panel.Key), panel.N)
		if i == 0 && r.emphasize {
			p.Title.TextStyle.Font.Weight = xfont.WeightBold
		}
		p.X.Min, p.X.Max = d.XMin, d.XMax
		p.Y.Min, p.Y.Max = -0.5, 0.5
		p.HideY()
		if i < len(d.Panels)-1 {
			p.HideX()
		} else {
			p.X.Label.Text = r.xlabel
		}
		if i == 0 {
			p.Legend.Top = true
			for j, label := range d.Scale.Labels {
				p.Legend.Add(label, thumbs[j])
			}
		}

		row.Label = p.Title.Text
		plots[i] = p
		layout.Rows[i] = row
	}

	h := r.barHeight*vg.Length(len(d.Panels)) + headroom
	return newFigure(layout, r.width, h, plots...), nil
}

// stackedPanel stacks the percentages left to right in scale order.
func stackedPanel(panel likert.Panel, scale survey.Scale, colors []color.Color, w vg.Length) (*plot.Plot, Row, []plot.Thumbnailer, error) {
	p := plot.New()
	row := Row{Key: panel.Key, N: panel.N}
	thumbs := make([]plot.Thumbnailer, scale.Len())

	var prev *plotter.BarChart
	var start float64
	for j, v := range panel.Percentages.Values {
		b, err := segment(v, colors[j], w, prev)
		if err != nil {
			return nil, Row{}, nil, err
		}
		p.Add(b)
		thumbs[j] = b
		row.Segments = append(row.Segments, Segment{
			Label: scale.Labels[j], Start: start, End: start + v, Color: palette.Hex(colors[j]),
		})
		start += v
		prev = b
	}
	return p, row, thumbs, nil
}

// divergingPanel stacks the positive group right of zero and the negative
// group left of zero, both starting with half of the neutral share.
func divergingPanel(panel likert.Panel, scale survey.Scale, colors []color.Color, w vg.Length) (*plot.Plot, Row, []plot.Thumbnailer, error) {
	s := panel.Split
	if err := scale.ValidateLikert(); err != nil {
		return nil, Row{}, nil, err
	}

	p := plot.New()
	p.X.Tick.Marker = divergingTicks
	thumbs := make([]plot.Thumbnailer, scale.Len())

	// Positive group: neutral/2, p3, p4 in colors 2, 3, 4.
	var prev *plotter.BarChart
	for k, v := range s.Positive {
		b, err := segment(v, colors[survey.NeutralIndex+k], w, prev)
		if err != nil {
			return nil, Row{}, nil, err
		}
		p.Add(b)
		thumbs[survey.NeutralIndex+k] = b
		prev = b
	}
	// Negative group: -neutral/2, -p1, -p0 in colors 2, 1, 0.
	prev = nil
	for k, v := range s.Negative {
		b, err := segment(v, colors[survey.NeutralIndex-k], w, prev)
		if err != nil {
			return nil, Row{}, nil, err
		}
		p.Add(b)
		if k > 0 {
			thumbs[survey.NeutralIndex-k] = b
		}
		prev = b
	}

	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: -0.5}, {X: 0, Y: 0.5}})
	if err != nil {
		return nil, Row{}, nil, err
	}
	zero.Color = color.Black
	zero.Width = vg.Points(0.5)
	p.Add(zero)

	notes := []Annotation{
		{Text: fmt.Sprintf("%d%%", s.Disagree), X: s.DisagreeX},
		{Text: fmt.Sprintf("%d%%", s.Uncertain), X: s.UncertainX},
		{Text: fmt.Sprintf("%d%%", s.Agree), X: s.AgreeX},
	}
	labels, err := annotations(notes)
	if err != nil {
		return nil, Row{}, nil, err
	}
	p.Add(labels)

	return p, divergingRow(panel, scale, colors, notes), thumbs, nil
}

func divergingRow(panel likert.Panel, scale survey.Scale, colors []color.Color, notes []Annotation) Row {
	s := panel.Split
	hex := func(i int) string { return palette.Hex(colors[i]) }
	l := scale.Labels

	half := s.Positive[0]
	return Row{
		Key: panel.Key,
		N:   panel.N,
		Segments: []Segment{
			{Label: l[0], Start: s.Negative[0] + s.Negative[1] + s.Negative[2], End: s.Negative[0] + s.Negative[1], Color: hex(0)},
			{Label: l[1], Start: s.Negative[0] + s.Negative[1], End: s.Negative[0], Color: hex(1)},
			{Label: l[2], Start: s.Negative[0], End: half, Color: hex(2)},
			{Label: l[3], Start: half, End: half + s.Positive[1], Color: hex(3)},
			{Label: l[4], Start: half + s.Positive[1], End: half + s.Positive[1] + s.Positive[2], Color: hex(4)},
		},
		Annotations: notes,
	}
}

// segment is a single horizontal bar at y = 0, stacked on prev when set.
func segment(v float64, c color.Color, w vg.Length, prev *plotter.BarChart) (*plotter.BarChart, error) {
	b, err := plotter.NewBarChart(plotter.Values{v}, w)
	if err != nil {
		return nil, err
	}
	b.Horizontal = true
	b.Color = c
	b.LineStyle.Width = 0
	if prev != nil {
		b.StackOn(prev)
	}
	return b, nil
}

func annotations(notes []Annotation) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(notes))
	texts := make([]string, len(notes))
	for i, n := range notes {
		xys[i] = plotter.XY{X: n.X, Y: 0}
		texts[i] = n.Text
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	return labels, nil
}
