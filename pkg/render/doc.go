// Package render draws survey charts with gonum/plot.
//
// # Overview
//
// Every builder turns aggregated data from
// [github.com/matzehuels/surveyplot/pkg/likert] into a [Figure]:
//
//   - [Bars]: frequency, percentage and multi-select bar charts
//   - [Likert]: stacked (0 to 100) or diverging (-100 to 100) Likert panels
//   - [Means]: mean ordinal score per question, optionally colored by category
//
// A figure is encoded with [Figure.Render] into one of the [Formats]. Vector
// and raster output comes from the gonum vg backends; "json" emits the
// [Layout] that was drawn, which is handy for tests and for re-plotting the
// same numbers elsewhere.
//
//	d, _ := likert.Compose(cols, survey.ScaleRelevant)
//	colors, _ := palette.Resolve(survey.ScaleRelevant, palette.Spec{})
//	fig, err := render.Likert(d, colors, render.WithTitles(titles))
//	svg, err := fig.Render(render.FormatSVG)
//
// # Sizes
//
// Figure sizes follow the bar-height convention: the height grows with the
// number of bars (or panels) while the width is fixed. Both are configurable
// with [WithWidth] and [WithBarHeight].
package render
