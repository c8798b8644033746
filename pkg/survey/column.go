package survey

import (
	"slices"

	"github.com/matzehuels/surveyplot/pkg/errors"
)

// Missing marks an absent answer in a Column.
const Missing = ""

// Column holds the answers given to one survey question.
type Column struct {
	Name   string
	Values []string
}

// NewColumn returns a column owning a copy of values.
func NewColumn(name string, values ...string) Column {
	return Column{Name: name, Values: slices.Clone(values)}
}

// Len returns the number of rows, missing answers included.
func (c Column) Len() int { return len(c.Values) }

// Count returns the number of non-missing answers.
func (c Column) Count() int {
	n := 0
	for _, v := range c.Values {
		if v != Missing {
			n++
		}
	}
	return n
}

// Table is a set of equally long named columns.
type Table struct {
	order   []string
	columns map[string]Column
	rows    int
}

// NewTable builds a table from columns, keeping their order.
// All columns must have the same length and distinct names.
func NewTable(columns ...Column) (*Table, error) {
	t := &Table{columns: make(map[string]Column, len(columns))}
	for i, c := range columns {
		if err := errors.ValidateColumnName(c.Name); err != nil {
			return nil, err
		}
		if _, dup := t.columns[c.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate column %q", c.Name)
		}
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"column %q has %d rows, expected %d", c.Name, c.Len(), t.rows)
		}
		t.order = append(t.order, c.Name)
		t.columns[c.Name] = c
	}
	return t, nil
}

// Rows returns the number of respondents.
func (t *Table) Rows() int { return t.rows }

// Names returns the column names in table order.
func (t *Table) Names() []string { return slices.Clone(t.order) }

// Column returns the named column.
func (t *Table) Column(name string) (Column, error) {
	c, ok := t.columns[name]
	if !ok {
		return Column{}, errors.New(errors.ErrCodeColumnNotFound, "column %q not found", name)
	}
	return c, nil
}

// Columns returns the named columns in the requested order.
func (t *Table) Columns(names ...string) ([]Column, error) {
	out := make([]Column, 0, len(names))
	for _, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
