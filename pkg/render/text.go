package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// wrap breaks s into lines of at most width cells on word boundaries.
func wrap(s string, width int) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	if width <= 0 {
		return s
	}
	return strings.TrimRight(ansi.Wordwrap(s, width, ""), "\n")
}

// headline formats a chart title with its sample size.
func headline(title string, n int) string {
	title = strings.ReplaceAll(title, "^", "'")
	return wrap(fmt.Sprintf("%s (n = %d)", title, n), TitleWidth)
}

func wrapAll(labels []string, width int) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = wrap(l, width)
	}
	return out
}
