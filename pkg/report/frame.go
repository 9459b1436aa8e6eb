package report

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrRaggedColumns is returned when columns of a frame differ in length.
	ErrRaggedColumns = errors.New("report: columns have different lengths")

	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("report: duplicate column name")

	// ErrEmptyColumnName is returned for a column without a name.
	ErrEmptyColumnName = errors.New("report: empty column name")
)

// Column is a named, ordered sequence of values.
type Column struct {
	Name   string
	Values []any
}

// Frame is an immutable table of equally long, named columns.
// Row i pairs the i-th value of every column.
type Frame struct {
	columns []Column
	rows    int
}

// NewFrame builds a Frame from columns. The values are copied, so later
// changes to the argument slices do not affect the frame.
func NewFrame(cols ...Column) (*Frame, error) {
	f := &Frame{columns: make([]Column, 0, len(cols))}
	seen := make(map[string]bool, len(cols))

	for i, c := range cols {
		if c.Name == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyColumnName)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("column %q: %w", c.Name, ErrDuplicateColumn)
		}
		seen[c.Name] = true

		if i == 0 {
			f.rows = len(c.Values)
		} else if len(c.Values) != f.rows {
			return nil, fmt.Errorf("column %q has %d values, want %d: %w",
				c.Name, len(c.Values), f.rows, ErrRaggedColumns)
		}

		values := make([]any, len(c.Values))
		copy(values, c.Values)
		f.columns = append(f.columns, Column{Name: c.Name, Values: values})
	}

	return f, nil
}

// MustFrame is like NewFrame but panics on error. It is meant for
// package-level literals whose shape is fixed at compile time.
func MustFrame(cols ...Column) *Frame {
	f, err := NewFrame(cols...)
	if err != nil {
		panic(err)
	}
	return f
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.columns)
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return f.rows
}

// Cell returns the value at the given row and column index.
func (f *Frame) Cell(row, col int) any {
	return f.columns[col].Values[row]
}

// Row returns a copy of the values of row i.
func (f *Frame) Row(i int) []any {
	row := make([]any, len(f.columns))
	for c := range f.columns {
		row[c] = f.columns[c].Values[i]
	}
	return row
}

// Rows returns a copy of every row in order.
func (f *Frame) Rows() [][]any {
	rows := make([][]any, f.rows)
	for i := range rows {
		rows[i] = f.Row(i)
	}
	return rows
}

// Strings returns every row with its values formatted by FormatValue.
func (f *Frame) Strings() [][]string {
	rows := make([][]string, f.rows)
	for i := range rows {
		row := make([]string, len(f.columns))
		for c := range f.columns {
			row[c] = FormatValue(f.columns[c].Values[i])
		}
		rows[i] = row
	}
	return rows
}

// Numeric reports whether every value of column col is a number. Surfaces
// use it to right-align numeric columns.
func (f *Frame) Numeric(col int) bool {
	if f.rows == 0 {
		return false
	}
	for _, v := range f.columns[col].Values {
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		default:
			return false
		}
	}
	return true
}

// FormatValue renders a cell value the same way on every surface.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
