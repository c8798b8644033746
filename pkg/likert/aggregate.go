package likert

import (
	"slices"

	"github.com/matzehuels/surveyplot/pkg/survey"
)

// Percentages is the share of responses per scale label, in scale order.
type Percentages struct {
	Key    string    // Column name the vector was computed from
	Labels []string  // Scale labels, in scale order
	Values []float64 // Percentage per label, parallel to Labels
	N      int       // Number of responses matching a scale label
}

// Get returns the percentage for label, or 0 if label is not on the scale.
func (p Percentages) Get(label string) float64 {
	if i := slices.Index(p.Labels, label); i >= 0 {
		return p.Values[i]
	}
	return 0
}

// Sum returns the total over all labels. It is 100 (up to rounding) when at
// least one response matched, and 0 otherwise.
func (p Percentages) Sum() float64 {
	var s float64
	for _, v := range p.Values {
		s += v
	}
	return s
}

// Aggregate computes the percentage of responses equal to each scale label.
// It fails with EMPTY_SCALE if the scale has no labels.
func Aggregate(col survey.Column, scale survey.Scale) (Percentages, error) {
	if err := scale.Validate(); err != nil {
		return Percentages{}, err
	}

	counts := make([]int, scale.Len())
	n := 0
	for _, v := range col.Values {
		if v == survey.Missing {
			continue
		}
		if i := scale.Index(v); i >= 0 {
			counts[i]++
			n++
		}
	}

	values := make([]float64, scale.Len())
	if n > 0 {
		for i, c := range counts {
			values[i] = 100 * float64(c) / float64(n)
		}
	}

	return Percentages{
		Key:    col.Name,
		Labels: slices.Clone(scale.Labels),
		Values: values,
		N:      n,
	}, nil
}
