package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/surveyplot/pkg/palette"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

// palettesCommand creates the palettes command, which lists the diverging
// ColorBrewer palettes and the built-in scales.
func (c *CLI) palettesCommand() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List color palettes and built-in scales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := paletteLines(n)
			if err != nil {
				return err
			}
			fmt.Println(StyleTitle.Render("Palettes"))
			for _, l := range lines {
				fmt.Println(l)
			}

			printNewline()
			fmt.Println(StyleTitle.Render("Scales"))
			for _, name := range builtinScaleNames() {
				s := survey.BuiltinScales[name]
				printKeyValue(name, strings.Join(s.Labels, " · "))
				printDetail("palette %s", palette.DefaultFor(name).Name)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "colors", "n", survey.LikertPoints, "number of colors to sample")

	return cmd
}

// paletteLines renders one swatch line per diverging palette.
func paletteLines(n int) ([]string, error) {
	lines := make([]string, 0, len(palette.Diverging))
	for _, name := range palette.Diverging {
		colors, err := palette.Named(name, n)
		if err != nil {
			return nil, err
		}
		var b strings.Builder
		for _, c := range colors {
			b.WriteString(swatch(palette.Hex(c)))
		}
		lines = append(lines, fmt.Sprintf("%-10s %s", name, b.String()))
	}
	return lines, nil
}

func builtinScaleNames() []string {
	names := make([]string, 0, len(survey.BuiltinScales))
	for name := range survey.BuiltinScales {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
