package render

import (
	"sync"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
)

// The pdf canvas registers each face under its full name and then selects it
// with a "B" style when the weight is bold, which it never registered. Bold
// faces are therefore also cached as a "<Variant>Bold" variant of normal
// weight, and titles are switched to that alias while drawing pdf output.
const boldVariant = "Bold"

var boldAliases sync.Once

func registerBoldAliases() {
	boldAliases.Do(func() {
		var coll font.Collection
		for _, f := range liberation.Collection() {
			if f.Font.Weight != xfont.WeightBold || f.Font.Style != xfont.StyleNormal {
				continue
			}
			alias := f.Font
			alias.Variant += boldVariant
			alias.Weight = xfont.WeightNormal
			coll = append(coll, font.Face{Font: alias, Face: f.Face})
		}
		font.DefaultCache.Add(coll)
	})
}

// pdfFont returns fnt with a bold weight expressed as the bold alias variant.
func pdfFont(fnt font.Font) font.Font {
	if fnt.Weight != xfont.WeightBold || fnt.Style != xfont.StyleNormal {
		return fnt
	}
	registerBoldAliases()
	fnt.Variant += boldVariant
	fnt.Weight = xfont.WeightNormal
	return fnt
}

// usePDFFonts switches bold panel titles to their pdf alias and returns a
// function restoring the original fonts.
func usePDFFonts(panels [][]*plot.Plot) (restore func()) {
	type saved struct {
		p    *plot.Plot
		font font.Font
	}
	var orig []saved
	for _, row := range panels {
		for _, p := range row {
			f := p.Title.TextStyle.Font
			if alias := pdfFont(f); alias != f {
				orig = append(orig, saved{p, f})
				p.Title.TextStyle.Font = alias
			}
		}
	}
	return func() {
		for _, s := range orig {
			s.p.Title.TextStyle.Font = s.font
		}
	}
}
