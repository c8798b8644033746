package likert

import "github.com/matzehuels/surveyplot/pkg/survey"

// Value-axis ranges shared by all panels of a diagram.
const (
	DivergingMin = -100.0
	DivergingMax = 100.0
	StackedMin   = 0.0
	StackedMax   = 100.0
)

// Panel is one question in a multi-row Likert diagram.
type Panel struct {
	Key         string
	N           int // Non-missing answers in the column
	Percentages Percentages
	Split       Split // Zero value for stacked diagrams
}

// Diagram is an ordered set of panels sharing one scale and one value axis.
type Diagram struct {
	Scale     survey.Scale
	Panels    []Panel
	Diverging bool
	XMin      float64
	XMax      float64
}

// Compose builds a diverging diagram with one panel per column, in input
// order. The scale must have exactly five labels.
func Compose(cols []survey.Column, scale survey.Scale) (Diagram, error) {
	if err := scale.Validate(); err != nil {
		return Diagram{}, err
	}
	if err := scale.ValidateLikert(); err != nil {
		return Diagram{}, err
	}

	d := Diagram{
		Scale:     scale,
		Panels:    make([]Panel, 0, len(cols)),
		Diverging: true,
		XMin:      DivergingMin,
		XMax:      DivergingMax,
	}
	for _, c := range cols {
		pct, err := Aggregate(c, scale)
		if err != nil {
			return Diagram{}, err
		}
		split, err := Diverge(pct)
		if err != nil {
			return Diagram{}, err
		}
		d.Panels = append(d.Panels, Panel{Key: c.Name, N: c.Count(), Percentages: pct, Split: split})
	}
	return d, nil
}

// Stack builds a plain stacked diagram (0 to 100) with one panel per column.
// Unlike Compose it accepts scales of any non-zero length.
func Stack(cols []survey.Column, scale survey.Scale) (Diagram, error) {
	if err := scale.Validate(); err != nil {
		return Diagram{}, err
	}

	d := Diagram{
		Scale:  scale,
		Panels: make([]Panel, 0, len(cols)),
		XMin:   StackedMin,
		XMax:   StackedMax,
	}
	for _, c := range cols {
		pct, err := Aggregate(c, scale)
		if err != nil {
			return Diagram{}, err
		}
		d.Panels = append(d.Panels, Panel{Key: c.Name, N: c.Count(), Percentages: pct})
	}
	return d, nil
}
