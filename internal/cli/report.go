package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/surveyplot/pkg/pipeline"
)

// reportOpts holds the flags of the report command.
type reportOpts struct {
	output     string
	formats    string
	only       []string
	dryRun     bool
	noManifest bool
}

// reportCommand creates the report command, which renders every chart of a
// TOML report file.
func (c *CLI) reportCommand() *cobra.Command {
	opts := reportOpts{}

	cmd := &cobra.Command{
		Use:   "report [survey.toml]",
		Short: "Render all charts of a report file",
		Long: `Render all charts described by a TOML report file.

The report names the survey table (CSV or XLSX), the question titles, custom
scales and the list of charts. Every chart is written to the output directory
in each requested format, together with a manifest.json listing the files and
the per-question summaries.`,
		Example: `  surveyplot report survey.toml
  surveyplot report survey.toml -f svg,pdf -o out
  surveyplot report survey.toml --only relevance --dry-run`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "survey.toml"
			if len(args) == 1 {
				path = args[0]
			}
			return c.runReport(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: output_dir of the report)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats: svg, png, pdf, json (comma-separated)")
	cmd.Flags().StringSliceVar(&opts.only, "only", nil, "render only the named charts")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "build and render charts without writing files")
	cmd.Flags().BoolVar(&opts.noManifest, "no-manifest", false, "do not write manifest.json")

	return cmd
}

func (c *CLI) runReport(ctx context.Context, path string, opts reportOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	formats := parseFormats(opts.formats)
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Loading survey...")
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		Config:       cfg,
		OutputDir:    opts.output,
		Formats:      formats,
		Only:         opts.only,
		DryRun:       opts.dryRun,
		SkipManifest: opts.noManifest,
		Progress: func(name string, index, total int) {
			spinner.Update(fmt.Sprintf("Rendering %s (%d/%d)...", name, index, total))
		},
	})
	if err != nil {
		spinner.Stop()
		return err
	}
	if opts.dryRun {
		spinner.StopWithSuccess("Dry run complete")
	} else {
		spinner.StopWithSuccess("Report rendered")
	}
	for _, ch := range result.Charts {
		for _, f := range ch.Files {
			printFile(f)
		}
	}
	if result.Manifest != "" {
		printFile(result.Manifest)
	}
	printStats(result.Stats.Rows, result.Stats.Charts, result.Stats.Files)

	if !opts.dryRun && len(result.Charts) > 0 {
		printNewline()
		printNextStep("Inspect the numbers", fmt.Sprintf("%s summary %s", appName, filepath.Base(path)))
	}
	return nil
}
