// Package palette resolves the colors used for each category of a scale.
//
// Colors are configuration, not globals: every chart call receives a [Spec]
// and resolves it against the scale it is drawing. A spec names either a
// ColorBrewer palette, which is sampled to the scale length, or an explicit
// list of hex colors, which must match the scale length exactly.
//
//	colors, err := palette.Resolve(survey.ScaleAgree, palette.Spec{Name: "RdBu"})
//	colors, err := palette.Resolve(scale, palette.Spec{Colors: []string{"#ca0020", ...}})
package palette

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette/brewer"

	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

// DefaultBar is the fill color of single-series bar charts.
const DefaultBar = "#1283b1"

// Spec selects the colors for a scale.
type Spec struct {
	Name   string   `toml:"palette" json:"palette,omitempty"` // ColorBrewer palette name
	Colors []string `toml:"colors" json:"colors,omitempty"`   // Explicit hex colors, one per label
}

// IsZero reports whether the spec selects nothing.
func (s Spec) IsZero() bool { return s.Name == "" && len(s.Colors) == 0 }

// Defaults maps built-in scale names to their palettes.
var Defaults = map[string]Spec{
	survey.ScaleAgree.Name:    {Name: "RdBu"},
	survey.ScaleLikely.Name:   {Name: "BrBG"},
	survey.ScaleRelevant.Name: {Name: "BrBG"},
	"high":                    {Name: "PRGn"},
}

// Diverging lists the ColorBrewer palettes suited to Likert scales.
var Diverging = []string{"BrBG", "PiYG", "PRGn", "PuOr", "RdBu", "RdGy", "RdYlBu", "RdYlGn", "Spectral"}

// DefaultFor returns the default spec for a scale name, falling back to RdBu.
func DefaultFor(scale string) Spec {
	if s, ok := Defaults[scale]; ok {
		return s
	}
	return Spec{Name: "RdBu"}
}

// Resolve returns one color per scale label.
//
// Explicit colors take precedence over a palette name. A color list whose
// length differs from the scale fails with COLOR_COUNT_MISMATCH.
func Resolve(scale survey.Scale, spec Spec) ([]color.Color, error) {
	if err := scale.Validate(); err != nil {
		return nil, err
	}
	if spec.IsZero() {
		spec = DefaultFor(scale.Name)
	}

	if len(spec.Colors) > 0 {
		if len(spec.Colors) != scale.Len() {
			return nil, errors.New(errors.ErrCodeColorCountMismatch,
				"scale %q has %d labels but %d colors were given", scale.Name, scale.Len(), len(spec.Colors))
		}
		return ParseColors(spec.Colors...)
	}

	return Named(spec.Name, scale.Len())
}

// Named samples n colors from a ColorBrewer palette.
func Named(name string, n int) ([]color.Color, error) {
	p, err := brewer.GetPalette(brewer.TypeAny, name, n)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnknownPalette, err, "palette %q with %d colors", name, n)
	}
	colors := p.Colors()
	if len(colors) != n {
		return nil, errors.New(errors.ErrCodeColorCountMismatch,
			"palette %q returned %d colors, want %d", name, len(colors), n)
	}
	return colors, nil
}

// ParseColors parses hex colors such as "#1283b1" or "1283b1".
func ParseColors(hex ...string) ([]color.Color, error) {
	out := make([]color.Color, len(hex))
	for i, h := range hex {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// ParseColor parses a single hex color.
func ParseColor(hex string) (color.Color, error) {
	h := strings.TrimSpace(hex)
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid color %q", hex)
	}
	return c, nil
}

// Hex formats a color as "#rrggbb".
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// Categorical returns n distinguishable colors for grouping bars, cycling
// through the Dark2 palette when more than eight are needed.
func Categorical(n int) ([]color.Color, error) {
	if n <= 0 {
		return nil, nil
	}
	base, err := Named("Dark2", 8)
	if err != nil {
		return nil, err
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out, nil
}
