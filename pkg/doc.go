// Package pkg provides the libraries behind surveyplot.
//
// # Overview
//
// Surveyplot turns tabular survey answers into charts: answer counts,
// multi-select shares, stacked Likert bars, diverging Likert bars centred on
// the neutral answer, and mean scale positions. The pkg directory is
// organized into three areas:
//
//  1. Domain: [survey] (columns, tables, scales) and [likert] (aggregation,
//     diverging split, multi-row composition, means, frequencies)
//  2. Presentation: [palette] (scale colors) and [render] (gonum/plot figures
//     in SVG, PNG, PDF and JSON)
//  3. Orchestration: [config] (TOML reports), [io] (CSV and XLSX loading) and
//     [pipeline] (load → aggregate → render → write)
//
// # Architecture
//
//	CSV / XLSX table ── [io] ──► [survey].Table
//	                                  │
//	TOML report ── [config] ──► [pipeline].Runner
//	                                  │
//	                    [likert] percentages, splits, means
//	                                  │
//	             [palette] colors ──► [render].Figure
//	                                  │
//	                    SVG / PNG / PDF / JSON + manifest.json
//
// # Quick Start
//
// Compute the diverging layout of three questions and render it:
//
//	tbl, _ := io.ImportCSV("survey.csv", io.Options{Missing: config.DefaultMissing})
//	cols, _ := tbl.Columns("requirements_rel", "open_rel", "dependencies_rel")
//
//	d, _ := likert.Compose(cols, survey.ScaleRelevant)
//	colors, _ := palette.Resolve(survey.ScaleRelevant, palette.DefaultFor("relevant"))
//
//	fig, _ := render.Likert(d, colors)
//	svg, _ := fig.Render(render.FormatSVG)
//
// Or run a whole report file:
//
//	cfg, _ := config.Load("survey.toml")
//	result, err := pipeline.NewRunner(nil).Execute(ctx, pipeline.Options{Config: cfg})
//
// # Supporting Packages
//
//   - [errors]: coded errors (EMPTY_SCALE, INVALID_SCALE_LENGTH, ...)
//   - [observability]: no-op hooks for load, chart, render and write events
//   - [buildinfo]: version information set at build time
//
// [survey]: https://pkg.go.dev/github.com/matzehuels/surveyplot/pkg/survey
// [likert]: https://pkg.go.dev/github.com/matzehuels/surveyplot/pkg/likert
// [palette]: https://pkg.go.dev/github.com/matzehuels/surveyplot/pkg/palette
// [render]: https://pkg.go.dev/github.com/matzehuels/surveyplot/pkg/render
// [config]: https://pkg.go.dev/github.com/matzehuels/surveyplot/pkg/config
// [io]: https://pkg.go.dev/github.com/matzehuels/surveyplot/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/surveyplot/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/surveyplot/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/surveyplot/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/surveyplot/pkg/buildinfo
package pkg
