// Package likert turns survey response columns into chart-ready aggregates.
//
// # Overview
//
// The package is a set of pure functions. Nothing is cached and inputs are
// never modified; calling a function twice with the same arguments yields the
// same result.
//
//   - [Aggregate]: percentage of responses per scale label
//   - [Diverge]: split of a five-point percentage vector into a diverging
//     stacked-bar layout with summary shares
//   - [Compose] and [Stack]: one panel per question, in input order
//   - [Mean] and [Rank]: ordinal encoding and mean score per question
//   - [Frequency] and [SplitFrequency]: raw answer counts for bar charts
//
// # Diverging layout
//
// For a five-point scale with percentages p0..p4, the neutral category is cut
// in half and placed on both sides of zero:
//
//	positive: [ p2/2,  p3,  p4]   stacked right from 0
//	negative: [-p2/2, -p1, -p0]   stacked left from 0
//
// The summary shares are agree = round(p3+p4), uncertain = round(p2) and
// disagree = 100 - agree - uncertain. Disagree is the residual so the three
// always add up to exactly 100.
//
//	pct, _ := likert.Aggregate(col, survey.ScaleRelevant)
//	split, _ := likert.Diverge(pct)
//	fmt.Println(split.Agree, split.Uncertain, split.Disagree)
//
// # Missing and unknown answers
//
// Missing answers ([survey.Missing]) and answers that are not labels of the
// scale are ignored: they count towards neither numerator nor denominator.
// A column without a single matching answer yields an all-zero vector.
package likert
