package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/surveyplot/pkg/config"
	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/likert"
	"github.com/matzehuels/surveyplot/pkg/pipeline"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

// summaryCommand creates the summary command, which prints the aggregated
// numbers behind each chart instead of drawing it.
func (c *CLI) summaryCommand() *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "summary [survey.toml]",
		Short: "Print the aggregated numbers of each chart",
		Long: `Print the numbers behind each chart of a report as terminal tables.

Likert charts show the share of each answer per question; diverging charts add
the rounded agree, uncertain and disagree totals shown as annotations. Mean
charts list questions ranked by mean scale position; bar charts list answer
counts.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "survey.toml"
			if len(args) == 1 {
				path = args[0]
			}
			return c.runSummary(cmd.Context(), path, only)
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil, "summarize only the named charts")

	return cmd
}

func (c *CLI) runSummary(ctx context.Context, path string, only []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p := newProgress(c.Logger)
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	tbl, err := c.newRunner().Load(ctx, cfg)
	if err != nil {
		return err
	}

	printKeyValue("Data", cfg.DataPath())
	printKeyValue("Respondents", strconv.Itoa(tbl.Rows()))

	shown := 0
	for _, ch := range cfg.Charts {
		name := pipeline.ChartName(ch)
		if len(only) > 0 && !slices.Contains(only, name) {
			continue
		}
		headers, rows, err := summaryRows(cfg, tbl, ch)
		if err != nil {
			return fmt.Errorf("chart %s: %w", name, err)
		}
		printNewline()
		fmt.Println(StyleTitle.Render(name) + " " + StyleDim.Render(ch.Kind))
		fmt.Println(renderTable(headers, rows))
		shown++
	}
	if shown == 0 {
		printWarning("No charts to summarize")
		return nil
	}
	p.done(fmt.Sprintf("Summarized %d charts", shown))
	return nil
}

// summaryRows computes the table shown for one chart.
func summaryRows(cfg *config.Config, tbl *survey.Table, ch config.Chart) ([]string, [][]string, error) {
	if err := pipeline.ValidateKind(ch.Kind); err != nil {
		return nil, nil, err
	}
	cols, err := tbl.Columns(ch.Questions...)
	if err != nil {
		return nil, nil, err
	}

	switch ch.Kind {
	case pipeline.KindFrequency, pipeline.KindPercentage, pipeline.KindSplit:
		return countRows(ch, cols)
	}

	if ch.Scale == "" {
		return nil, nil, errors.New(errors.ErrCodeInvalidChart, "%s chart requires a scale", ch.Kind)
	}
	scale, _, err := cfg.Scale(ch.Scale)
	if err != nil {
		return nil, nil, err
	}

	if ch.Kind == pipeline.KindMean {
		scores, err := likert.Means(cols, scale)
		if err != nil {
			return nil, nil, err
		}
		headers := []string{"Question", "N", "Mean", "Category"}
		var rows [][]string
		for _, s := range likert.Rank(scores) {
			rows = append(rows, []string{s.Key, strconv.Itoa(s.N), fmt.Sprintf("%.2f", s.Mean), cfg.Category(s.Key)})
		}
		return headers, rows, nil
	}

	var d likert.Diagram
	if ch.Kind == pipeline.KindDiverging {
		d, err = likert.Compose(cols, scale)
	} else {
		d, err = likert.Stack(cols, scale)
	}
	if err != nil {
		return nil, nil, err
	}

	headers := append([]string{"Question", "N"}, scale.Labels...)
	if d.Diverging {
		headers = append(headers, "Disagree", "Uncertain", "Agree")
	}
	rows := make([][]string, 0, len(d.Panels))
	for _, p := range d.Panels {
		row := []string{p.Key, strconv.Itoa(p.N)}
		for _, v := range p.Percentages.Values {
			row = append(row, fmt.Sprintf("%.1f%%", v))
		}
		if d.Diverging {
			row = append(row,
				fmt.Sprintf("%d%%", p.Split.Disagree),
				fmt.Sprintf("%d%%", p.Split.Uncertain),
				fmt.Sprintf("%d%%", p.Split.Agree))
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

func countRows(ch config.Chart, cols []survey.Column) ([]string, [][]string, error) {
	if len(cols) != 1 {
		return nil, nil, errors.New(errors.ErrCodeInvalidChart, "%s chart takes exactly one question, got %d", ch.Kind, len(cols))
	}
	counts := likert.Frequency(cols[0])
	if ch.Kind == pipeline.KindSplit {
		if ch.Separator == "" {
			return nil, nil, errors.New(errors.ErrCodeInvalidChart, "split chart requires a separator")
		}
		var err error
		if counts, err = likert.SplitFrequency(cols[0], ch.Separator); err != nil {
			return nil, nil, err
		}
	}

	pct := counts.Percent()
	rows := make([][]string, len(counts.Items))
	// Largest first, the reverse of the plotting order.
	for i, item := range counts.Items {
		rows[len(rows)-1-i] = []string{item.Label, strconv.Itoa(item.Count), fmt.Sprintf("%.1f%%", pct[i])}
	}
	return []string{"Answer", "Count", "Share"}, rows, nil
}

// renderTable draws a rounded table with right-aligned value columns.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			s := lipgloss.NewStyle().Padding(0, 1)
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})
	return t.Render()
}
