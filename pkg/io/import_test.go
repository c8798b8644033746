package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/surveyplot/pkg/errors"
	"github.com/matzehuels/surveyplot/pkg/survey"
)

const sampleCSV = "\uFEFFrequirements_rel,open_rel,dependencies_rel\n" +
	"Moderately relevant,Relevant,Very relevant\n" +
	"Slightly relevant,Moderately relevant,NA\n" +
	"Relevant, Relevant ,\n"

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sampleCSV), Options{Missing: []string{"NA"}})
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}

	if got := tbl.Names(); len(got) != 3 || got[0] != "requirements_rel" {
		t.Errorf("Names() = %v", got)
	}
	if tbl.Rows() != 3 {
		t.Errorf("Rows() = %d, want 3", tbl.Rows())
	}

	open, _ := tbl.Column("open_rel")
	if open.Values[2] != "Relevant" {
		t.Errorf("open_rel[2] = %q, want trimmed value", open.Values[2])
	}

	deps, _ := tbl.Column("dependencies_rel")
	if deps.Values[1] != survey.Missing || deps.Values[2] != survey.Missing {
		t.Errorf("dependencies_rel = %q, want missing cells", deps.Values)
	}
	if deps.Count() != 1 {
		t.Errorf("Count() = %d, want 1", deps.Count())
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b\n1\n2,3,4\n"), Options{})
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	b, _ := tbl.Column("b")
	if b.Values[0] != survey.Missing || b.Values[1] != "3" {
		t.Errorf("b = %q", b.Values)
	}
}

func TestReadCSVPandasIndex(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(",open_rel\n0,Relevant\n1,Moderately relevant\n"), Options{})
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if got := tbl.Names(); len(got) != 2 || got[0] != "Unnamed: 0" || got[1] != "open_rel" {
		t.Errorf("Names() = %q", got)
	}
	open, _ := tbl.Column("open_rel")
	if open.Values[1] != "Moderately relevant" {
		t.Errorf("open_rel = %q", open.Values)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader(""), Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ReadCSV() error = %v, want INVALID_INPUT", err)
	}
}

func TestImportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Import(path, Options{})
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if tbl.Rows() != 3 {
		t.Errorf("Rows() = %d, want 3", tbl.Rows())
	}
}

func TestImportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"requirements_rel", "open_rel"},
		{"Moderately relevant", "Relevant"},
		{"Slightly relevant", "n/a"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tbl, err := Import(path, Options{Missing: []string{"n/a"}})
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	open, err := tbl.Column("open_rel")
	if err != nil {
		t.Fatalf("Column() error: %v", err)
	}
	if open.Values[0] != "Relevant" || open.Values[1] != survey.Missing {
		t.Errorf("open_rel = %q", open.Values)
	}

	if _, err := Import(path, Options{Sheet: "Nope"}); err == nil {
		t.Error("Import() with unknown sheet should fail")
	}
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Import(filepath.Join(dir, "survey.json"), Options{}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Import(.json) error = %v, want INVALID_FORMAT", err)
	}
	if _, err := Import(filepath.Join(dir, "missing.csv"), Options{}); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Import(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
