package likert

import (
	"cmp"
	"slices"

	"github.com/matzehuels/surveyplot/pkg/survey"
)

// Score is the mean ordinal position of the answers to one question.
type Score struct {
	Key      string
	Mean     float64 // Mean scale index, 0 when N is 0
	N        int     // Answers that matched a scale label
	Category string  // Optional grouping used for coloring
}

// Mean encodes each answer as its index on the scale and averages the codes.
// Missing answers and labels outside the scale are skipped.
func Mean(col survey.Column, scale survey.Scale) (Score, error) {
	if err := scale.Validate(); err != nil {
		return Score{}, err
	}

	var sum float64
	n := 0
	for _, v := range col.Values {
		if v == survey.Missing {
			continue
		}
		if i := scale.Index(v); i >= 0 {
			sum += float64(i)
			n++
		}
	}

	s := Score{Key: col.Name, N: n}
	if n > 0 {
		s.Mean = sum / float64(n)
	}
	return s, nil
}

// Means scores every column in order.
func Means(cols []survey.Column, scale survey.Scale) ([]Score, error) {
	out := make([]Score, 0, len(cols))
	for _, c := range cols {
		s, err := Mean(c, scale)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Rank returns a copy of scores ordered by descending mean. Ties keep their
// input order.
func Rank(scores []Score) []Score {
	out := slices.Clone(scores)
	slices.SortStableFunc(out, func(a, b Score) int {
		return cmp.Compare(b.Mean, a.Mean)
	})
	return out
}
