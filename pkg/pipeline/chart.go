package pipeline

import (
	"fmt"

	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/surveyplot/pkg/config"
	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/likert"
	"github.com/matzehuels/surveyplot/pkg/palette"
	"github.com/matzehuels/surveyplot/pkg/render"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

// ChartName returns the base file name of a chart: its configured file, or
// kind and first question.
func ChartName(ch config.Chart) string {
	if ch.File != "" {
		return ch.File
	}
	if len(ch.Questions) == 0 {
		return ch.Kind
	}
	return ch.Kind + "-" + ch.Questions[0]
}

// Build aggregates the questions of one chart and builds its figure.
func Build(cfg *config.Config, tbl *survey.Table, ch config.Chart) (*render.Figure, []RowSummary, error) {
	if err := ValidateKind(ch.Kind); err != nil {
		return nil, nil, err
	}
	cols, err := tbl.Columns(ch.Questions...)
	if err != nil {
		return nil, nil, err
	}
	opts, err := renderOptions(cfg, ch)
	if err != nil {
		return nil, nil, err
	}

	switch ch.Kind {
	case KindFrequency, KindPercentage, KindSplit:
		return buildBars(cfg, ch, cols, opts)
	case KindLikert, KindDiverging:
		return buildLikert(cfg, ch, cols, opts)
	default:
		return buildMean(cfg, ch, cols, opts)
	}
}

func buildBars(cfg *config.Config, ch config.Chart, cols []survey.Column, opts []render.Option) (*render.Figure, []RowSummary, error) {
	if len(cols) != 1 {
		return nil, nil, errors.New(errors.ErrCodeInvalidChart, "%s chart takes exactly one question, got %d", ch.Kind, len(cols))
	}
	col := cols[0]

	counts := likert.Frequency(col)
	percent := ch.Kind == KindPercentage
	if ch.Kind == KindSplit {
		sep := ch.Separator
		if sep == "" {
			return nil, nil, errors.New(errors.ErrCodeInvalidChart, "split chart requires a separator")
		}
		var err error
		if counts, err = likert.SplitFrequency(col, sep); err != nil {
			return nil, nil, err
		}
		percent = ch.Percent
	}

	fig, err := render.Bars(counts, cfg.Title(col.Name, ch.Short), percent, opts...)
	if err != nil {
		return nil, nil, err
	}
	return fig, []RowSummary{{Key: col.Name, N: counts.Total}}, nil
}

func buildLikert(cfg *config.Config, ch config.Chart, cols []survey.Column, opts []render.Option) (*render.Figure, []RowSummary, error) {
	scale, spec, err := chartScale(cfg, ch)
	if err != nil {
		return nil, nil, err
	}

	var d likert.Diagram
	if ch.Kind == KindDiverging {
		d, err = likert.Compose(cols, scale)
	} else {
		d, err = likert.Stack(cols, scale)
	}
	if err != nil {
		return nil, nil, err
	}
	colors, err := palette.Resolve(scale, spec)
	if err != nil {
		return nil, nil, err
	}

	fig, err := render.Likert(d, colors, opts...)
	if err != nil {
		return nil, nil, err
	}

	summary := make([]RowSummary, len(d.Panels))
	for i, p := range d.Panels {
		summary[i] = RowSummary{Key: p.Key, N: p.N}
		if d.Diverging {
			s := p.Split
			summary[i].Agree, summary[i].Uncertain, summary[i].Disagree = &s.Agree, &s.Uncertain, &s.Disagree
		}
	}
	return fig, summary, nil
}

func buildMean(cfg *config.Config, ch config.Chart, cols []survey.Column, opts []render.Option) (*render.Figure, []RowSummary, error) {
	scale, _, err := chartScale(cfg, ch)
	if err != nil {
		return nil, nil, err
	}
	scores, err := likert.Means(cols, scale)
	if err != nil {
		return nil, nil, err
	}
	for i := range scores {
		scores[i].Category = cfg.Category(scores[i].Key)
	}

	fig, err := render.Means(scores, scale, opts...)
	if err != nil {
		return nil, nil, err
	}

	summary := make([]RowSummary, 0, len(scores))
	for _, s := range likert.Rank(scores) {
		summary = append(summary, RowSummary{Key: s.Key, N: s.N, Mean: &s.Mean})
	}
	return fig, summary, nil
}

func chartScale(cfg *config.Config, ch config.Chart) (survey.Scale, palette.Spec, error) {
	if ch.Scale == "" {
		return survey.Scale{}, palette.Spec{}, errors.New(errors.ErrCodeInvalidChart, "%s chart requires a scale", ch.Kind)
	}
	return cfg.Scale(ch.Scale)
}

// renderOptions maps chart settings onto render options.
func renderOptions(cfg *config.Config, ch config.Chart) ([]render.Option, error) {
	short := ch.Short || ch.Kind == KindMean
	opts := []render.Option{
		render.WithTitles(func(key string) string { return cfg.Title(key, short) }),
	}
	if ch.XLabel != "" {
		opts = append(opts, render.WithXLabel(ch.XLabel))
	}
	if ch.Width > 0 {
		opts = append(opts, render.WithWidth(vg.Length(ch.Width)*vg.Inch))
	}
	if ch.BarHeight > 0 {
		opts = append(opts, render.WithBarHeight(vg.Length(ch.BarHeight)*vg.Inch))
	}
	if ch.BoldFirst {
		opts = append(opts, render.WithEmphasis())
	}
	if ch.TickWidth > 0 {
		opts = append(opts, render.WithTickWidth(ch.TickWidth))
	}
	if ch.Color != "" {
		c, err := palette.ParseColor(ch.Color)
		if err != nil {
			return nil, fmt.Errorf("chart %s: %w", ChartName(ch), err)
		}
		opts = append(opts, render.WithColor(c))
	}
	return opts, nil
}
