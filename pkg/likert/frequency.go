package likert

import (
	"cmp"
	"slices"
	"strings"

	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

// Count is the number of times one answer was given.
type Count struct {
	Label string
	Count int
}

// Counts is an answer histogram ordered by ascending count.
type Counts struct {
	Key   string
	Items []Count
	// Total is the percentage base: non-missing answers for Frequency,
	// all rows for SplitFrequency.
	Total int
}

// Labels returns the answer labels in order.
func (c Counts) Labels() []string {
	out := make([]string, len(c.Items))
	for i, it := range c.Items {
		out[i] = it.Label
	}
	return out
}

// Values returns the raw counts in order.
func (c Counts) Values() []float64 {
	out := make([]float64, len(c.Items))
	for i, it := range c.Items {
		out[i] = float64(it.Count)
	}
	return out
}

// Percent returns each count as a percentage of Total.
func (c Counts) Percent() []float64 {
	out := make([]float64, len(c.Items))
	if c.Total == 0 {
		return out
	}
	for i, it := range c.Items {
		out[i] = 100 * float64(it.Count) / float64(c.Total)
	}
	return out
}

// Sum returns the sum of all counts.
func (c Counts) Sum() int {
	n := 0
	for _, it := range c.Items {
		n += it.Count
	}
	return n
}

// Frequency counts the distinct non-missing answers of a column.
func Frequency(col survey.Column) Counts {
	seen := make(map[string]int)
	for _, v := range col.Values {
		if v != survey.Missing {
			seen[v]++
		}
	}
	return Counts{Key: col.Name, Items: sortCounts(seen), Total: col.Count()}
}

// SplitFrequency counts the options of a multiple-choice column whose answers
// are joined by sep. Options are trimmed and empty options dropped. The
// percentage base is the number of rows, so percentages may exceed 100 in sum.
func SplitFrequency(col survey.Column, sep string) (Counts, error) {
	if sep == "" {
		return Counts{}, errors.New(errors.ErrCodeInvalidInput, "separator cannot be empty")
	}

	seen := make(map[string]int)
	for _, v := range col.Values {
		if v == survey.Missing {
			continue
		}
		for _, part := range strings.Split(v, sep) {
			if part = strings.TrimSpace(part); part != "" {
				seen[part]++
			}
		}
	}
	return Counts{Key: col.Name, Items: sortCounts(seen), Total: col.Len()}, nil
}

func sortCounts(seen map[string]int) []Count {
	items := make([]Count, 0, len(seen))
	for label, n := range seen {
		items = append(items, Count{Label: label, Count: n})
	}
	slices.SortFunc(items, func(a, b Count) int {
		if c := cmp.Compare(a.Count, b.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return items
}
