package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

// Options controls how cells are read.
type Options struct {
	// Missing lists cell values treated as missing answers. The empty cell
	// is always missing.
	Missing []string
	// Sheet selects the XLSX sheet; the first sheet is used when empty.
	Sheet string
}

// Import reads a table, choosing the format from the file extension.
func Import(path string, opts Options) (*survey.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ImportCSV(path, opts)
	case ".xlsx", ".xlsm":
		return ImportXLSX(path, opts)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported table format: %s", path)
	}
}

// ImportCSV reads a CSV file at path.
func ImportCSV(path string, opts Options) (*survey.Table, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "table %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	tbl, err := ReadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

// ReadCSV decodes a CSV table from r. ReadCSV does not close r.
func ReadCSV(r io.Reader, opts Options) (*survey.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode csv")
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\uFEFF")
	}
	return buildTable(records, opts)
}

// ImportXLSX reads one sheet of an XLSX workbook at path.
func ImportXLSX(path string, opts Options) (*survey.Table, error) {
	f, err := excelize.OpenFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "table %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s: workbook has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: read sheet %q", path, sheet)
	}
	tbl, err := buildTable(rows, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

// buildTable turns header + rows into columns. Short rows are padded with
// missing cells; cells beyond the header are ignored. Empty header cells are
// named "Unnamed: N" after their position, as pandas does.
func buildTable(rows [][]string, opts Options) (*survey.Table, error) {
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "table has no header row")
	}

	header := rows[0]
	body := rows[1:]
	cols := make([]survey.Column, len(header))
	for j, name := range header {
		values := make([]string, len(body))
		for i, row := range body {
			if j < len(row) {
				values[i] = normalize(row[j], opts.Missing)
			}
		}
		name = strings.TrimSpace(name)
		if name == "" {
			// pandas writes its index as an unnamed first column.
			name = fmt.Sprintf("Unnamed: %d", j)
		}
		cols[j] = survey.Column{Name: name, Values: values}
	}
	return survey.NewTable(cols...)
}

func normalize(cell string, missing []string) string {
	v := strings.TrimSpace(cell)
	if slices.Contains(missing, v) {
		return survey.Missing
	}
	return v
}
