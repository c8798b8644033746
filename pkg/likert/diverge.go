package likert

import (
	"math"

	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

// Split is the diverging stacked-bar layout of one five-point item.
type Split struct {
	Key     string
	Neutral float64 // Full neutral percentage (p2)

	// Positive is stacked right from zero: [p2/2, p3, p4].
	Positive [3]float64
	// Negative is stacked left from zero: [-p2/2, -p1, -p0].
	Negative [3]float64

	// Rounded shares; Agree + Uncertain + Disagree == 100 whenever the
	// percentages sum to 100.
	Agree     int
	Uncertain int
	Disagree  int

	// Annotation anchors on the value axis for the three shares.
	AgreeX     float64
	UncertainX float64
	DisagreeX  float64
}

// Diverge computes the diverging layout of a five-point percentage vector.
// It fails with INVALID_SCALE_LENGTH for any other length.
func Diverge(p Percentages) (Split, error) {
	if len(p.Values) != survey.LikertPoints {
		return Split{}, errors.New(errors.ErrCodeInvalidScaleLength,
			"diverging layout requires %d categories, %q has %d", survey.LikertPoints, p.Key, len(p.Values))
	}

	v := p.Values
	half := v[survey.NeutralIndex] / 2

	s := Split{
		Key:      p.Key,
		Neutral:  v[survey.NeutralIndex],
		Positive: [3]float64{half, v[3], v[4]},
		Negative: [3]float64{neg(half), neg(v[1]), neg(v[0])},
	}

	s.Agree = roundShare(v[3] + v[4])
	s.Uncertain = roundShare(v[survey.NeutralIndex])
	s.Disagree = 100 - s.Agree - s.Uncertain

	s.UncertainX = 0
	s.AgreeX = float64(s.Agree)/2 + float64(s.Uncertain) + 1
	s.DisagreeX = -(float64(s.Disagree)/2 + float64(s.Uncertain) + 1)

	return s, nil
}

// neg negates x without producing negative zero for empty categories.
func neg(x float64) float64 { return 0 - x }

// roundShare rounds half to even, matching how the published figures were
// produced.
func roundShare(x float64) int {
	return int(math.RoundToEven(x))
}
