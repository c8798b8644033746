package survey

import (
	"testing"

	"github.com/matzehuels/surveyplot/pkg/errors"
)

func TestScaleIndex(t *testing.T) {
	s := ScaleRelevant
	if got := s.Index("Relevant"); got != 3 {
		t.Errorf("Index(Relevant) = %d, want 3", got)
	}
	if got := s.Index("Irrelevant"); got != -1 {
		t.Errorf("Index(Irrelevant) = %d, want -1", got)
	}
	if !s.Contains("Not relevant") {
		t.Error("Contains(Not relevant) = false, want true")
	}
	if s.Labels[NeutralIndex] != "Moderately relevant" {
		t.Errorf("neutral label = %q", s.Labels[NeutralIndex])
	}
}

func TestScaleValidate(t *testing.T) {
	if err := (Scale{Name: "empty"}).Validate(); !errors.Is(err, errors.ErrCodeEmptyScale) {
		t.Errorf("Validate() on empty scale = %v, want EMPTY_SCALE", err)
	}
	if err := ScaleAgree.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	three := NewScale("three", "no", "maybe", "yes")
	if err := three.ValidateLikert(); !errors.Is(err, errors.ErrCodeInvalidScaleLength) {
		t.Errorf("ValidateLikert() on 3 labels = %v, want INVALID_SCALE_LENGTH", err)
	}
	for name, s := range BuiltinScales {
		if err := s.ValidateLikert(); err != nil {
			t.Errorf("builtin %s: ValidateLikert() = %v", name, err)
		}
	}
}

func TestNewScaleCopiesLabels(t *testing.T) {
	labels := []string{"a", "b"}
	s := NewScale("x", labels...)
	labels[0] = "changed"
	if s.Labels[0] != "a" {
		t.Error("NewScale should copy labels")
	}
}

func TestColumnCount(t *testing.T) {
	c := NewColumn("q", "Agree", Missing, "Disagree", Missing)
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
	if c.Count() != 2 {
		t.Errorf("Count() = %d, want 2", c.Count())
	}
}

func TestTable(t *testing.T) {
	tbl, err := NewTable(
		NewColumn("open_rel", "Relevant", "Moderately relevant", "Relevant"),
		NewColumn("requirements_rel", "Moderately relevant", "Slightly relevant", "Relevant"),
	)
	if err != nil {
		t.Fatalf("NewTable() error: %v", err)
	}
	if tbl.Rows() != 3 {
		t.Errorf("Rows() = %d, want 3", tbl.Rows())
	}
	if names := tbl.Names(); len(names) != 2 || names[0] != "open_rel" {
		t.Errorf("Names() = %v", names)
	}

	cols, err := tbl.Columns("requirements_rel", "open_rel")
	if err != nil {
		t.Fatalf("Columns() error: %v", err)
	}
	if cols[0].Name != "requirements_rel" || cols[1].Name != "open_rel" {
		t.Errorf("Columns() order = %s, %s", cols[0].Name, cols[1].Name)
	}

	if _, err := tbl.Column("missing"); !errors.Is(err, errors.ErrCodeColumnNotFound) {
		t.Errorf("Column(missing) = %v, want COLUMN_NOT_FOUND", err)
	}
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name string
		cols []Column
	}{
		{"ragged", []Column{NewColumn("a", "x"), NewColumn("b", "x", "y")}},
		{"duplicate", []Column{NewColumn("a", "x"), NewColumn("a", "y")}},
		{"unnamed", []Column{NewColumn("", "x")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.cols...); err == nil {
				t.Error("NewTable() should fail")
			}
		})
	}
}
