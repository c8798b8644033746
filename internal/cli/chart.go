package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/surveyplot/pkg/config"
	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/pipeline"
)

// chartOpts holds the flags of the chart command.
type chartOpts struct {
	data      string
	config    string
	sheet     string
	scale     string
	separator string
	percent   bool
	short     bool
	boldFirst bool
	xlabel    string
	output    string
	formats   string
}

// chartCommand creates the chart command, which renders a single chart
// without a report file.
func (c *CLI) chartCommand() *cobra.Command {
	opts := chartOpts{}

	cmd := &cobra.Command{
		Use:   "chart KIND QUESTION...",
		Short: "Render a single chart",
		Long: `Render a single chart for one or more survey questions.

Kinds:
  frequency    answer counts of one question
  percentage   answer shares of one question
  split        multi-select answers of one question (needs --separator)
  likert       stacked Likert bars (needs --scale)
  diverging    diverging Likert bars around the neutral answer (needs --scale)
  mean         mean scale position per question (needs --scale)

Question titles, categories and custom scales are read from --config when
given; otherwise column names are used as titles.`,
		Example: `  surveyplot chart diverging requirements_rel open_rel --data survey.csv --scale relevant
  surveyplot chart split tools --data survey.csv --separator ";" --percent -o tools.svg`,
		Args: cobra.MinimumNArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return pipeline.Kinds, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runChart(cmd.Context(), args[0], args[1:], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "survey table (CSV or XLSX)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "report file with question titles and scales")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "XLSX sheet (default: first sheet)")
	cmd.Flags().StringVarP(&opts.scale, "scale", "s", "", "response scale for likert, diverging and mean charts")
	cmd.Flags().StringVar(&opts.separator, "separator", "", "answer separator for split charts")
	cmd.Flags().BoolVar(&opts.percent, "percent", false, "show split charts as percentages")
	cmd.Flags().BoolVar(&opts.short, "short", false, "use short question titles")
	cmd.Flags().BoolVar(&opts.boldFirst, "bold-first", false, "bold title on the first Likert panel")
	cmd.Flags().StringVar(&opts.xlabel, "xlabel", "", "value axis label")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <kind>-<question> in the current directory)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats: svg, png, pdf, json (comma-separated)")

	return cmd
}

func (c *CLI) runChart(ctx context.Context, kind string, questions []string, opts chartOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := pipeline.ValidateKind(kind); err != nil {
		return err
	}
	cfg, err := chartConfig(opts)
	if err != nil {
		return err
	}

	ch := config.Chart{
		Kind:      kind,
		Questions: questions,
		Scale:     opts.scale,
		Separator: opts.separator,
		Percent:   opts.percent,
		Short:     opts.short,
		BoldFirst: opts.boldFirst,
		XLabel:    opts.xlabel,
	}
	dir, formats := ".", parseFormats(opts.formats)
	if opts.output != "" {
		var ext string
		dir, ch.File, ext = splitOutput(opts.output)
		if ext != "" && len(formats) == 0 {
			formats = []string{ext}
		}
	}

	runner := c.newRunner()
	tbl, err := runner.Load(ctx, cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create output dir %s", dir)
	}
	result, err := runner.Chart(ctx, pipeline.Options{
		Config:    cfg,
		Table:     tbl,
		OutputDir: dir,
		Formats:   formats,
	}, tbl, ch)
	if err != nil {
		return err
	}

	printSuccess("Chart rendered")
	for _, f := range result.Files {
		printFile(f)
	}
	return nil
}

// chartConfig loads the optional report file and applies the data flags.
func chartConfig(opts chartOpts) (*config.Config, error) {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return nil, err
	}
	if opts.data != "" {
		abs, err := filepath.Abs(opts.data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "data %s", opts.data)
		}
		cfg.Data = abs
	}
	if opts.sheet != "" {
		cfg.Sheet = opts.sheet
	}
	if cfg.Data == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "no data file: pass --data or a --config naming one")
	}
	return cfg, nil
}

// splitOutput splits an output path into directory, base name and a format
// extension when the extension is a known format.
func splitOutput(path string) (dir, name, format string) {
	dir, name = filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext != "" && pipeline.ValidateFormat(ext) == nil {
		return filepath.Clean(dir), strings.TrimSuffix(name, "."+ext), ext
	}
	return filepath.Clean(dir), name, ""
}
