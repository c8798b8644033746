// Package survey defines the input model shared by every aggregator and chart:
// ordinal response scales, response columns and the table they come from.
//
// # Scales
//
// A [Scale] is a named, ordered list of response labels. Diverging Likert
// charts require the symmetric five-point form, where index 2 is the neutral
// midpoint, indices 0-1 the negative side and 3-4 the positive side:
//
//	scale := survey.Scale{Name: "relevant", Labels: []string{
//	    "Not relevant", "Slightly relevant", "Moderately relevant",
//	    "Relevant", "Very relevant",
//	}}
//
// # Columns
//
// A [Column] holds the answers for one question. Missing answers are stored as
// [Missing] (the empty string); loaders translate configured markers such as
// "NA" before building the column. Columns are treated as read-only by every
// consumer in this module.
//
// # Tables
//
// A [Table] is a set of named columns with a fixed row count, typically built
// by [github.com/matzehuels/surveyplot/pkg/io]. Lookups by name fail with
// COLUMN_NOT_FOUND; no other schema validation is performed.
package survey
