package survey

import (
	"slices"

	"github.com/matzehuels/surveyplot/pkg/errors"
)

// LikertPoints is the number of categories a diverging Likert scale must have.
const LikertPoints = 5

// NeutralIndex is the position of the neutral midpoint on a five-point scale.
const NeutralIndex = 2

// Scale is a named, ordered set of ordinal response labels.
type Scale struct {
	Name   string
	Labels []string
}

// NewScale returns a scale owning a copy of labels.
func NewScale(name string, labels ...string) Scale {
	return Scale{Name: name, Labels: slices.Clone(labels)}
}

// Len returns the number of labels.
func (s Scale) Len() int { return len(s.Labels) }

// Index returns the position of label in the scale, or -1.
func (s Scale) Index(label string) int {
	return slices.Index(s.Labels, label)
}

// Contains reports whether label belongs to the scale.
func (s Scale) Contains(label string) bool { return s.Index(label) >= 0 }

// Validate checks that the scale can be used for normalization.
func (s Scale) Validate() error {
	if len(s.Labels) == 0 {
		return errors.New(errors.ErrCodeEmptyScale, "scale %q has no labels", s.Name)
	}
	return nil
}

// ValidateLikert checks that the scale is a symmetric five-point scale.
func (s Scale) ValidateLikert() error {
	if len(s.Labels) != LikertPoints {
		return errors.New(errors.ErrCodeInvalidScaleLength,
			"scale %q has %d labels, diverging layout requires %d", s.Name, len(s.Labels), LikertPoints)
	}
	return nil
}

// Built-in scales used by the example survey.
var (
	ScaleAgree = NewScale("agree",
		"Strongly disagree",
		"Disagree",
		"Neither agree or disagree",
		"Agree",
		"Strongly agree",
	)

	ScaleLikely = NewScale("likely",
		"Very unlikely",
		"Unlikely",
		"About as likely as not",
		"Likely",
		"Very likely",
	)

	ScaleRelevant = NewScale("relevant",
		"Not relevant",
		"Slightly relevant",
		"Moderately relevant",
		"Relevant",
		"Very relevant",
	)
)

// BuiltinScales maps scale names to the built-in scales.
var BuiltinScales = map[string]Scale{
	ScaleAgree.Name:    ScaleAgree,
	ScaleLikely.Name:   ScaleLikely,
	ScaleRelevant.Name: ScaleRelevant,
}
