// Package io reads survey tables from CSV and XLSX files.
//
// # Overview
//
// Both formats use the first row as the header: every header cell names a
// column (one question), every following row is one respondent. Cells are
// kept as strings; cells matching one of the configured missing markers become
// [survey.Missing].
//
//	tbl, err := io.Import("survey.xlsx", io.Options{Sheet: "Responses"})
//	col, err := tbl.Column("requirements_rel")
//
// The reader does not interpret answers: matching them against a scale is the
// job of the aggregators in [github.com/matzehuels/surveyplot/pkg/likert].
package io
