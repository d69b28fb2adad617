// =============================================================================
// Excel Shipment Converter - In-Memory Table
// =============================================================================
//
// This package provides the in-memory table model shared by the parser, the
// converter, and the writer. A Table is an ordered sequence of named columns
// of equal length; each cell is a string and the empty string is the null
// representation (it becomes a blank cell in the output workbook).
//
// The distinction between an ABSENT column and an ALL-BLANK column matters:
// a preserved column whose source counterpart was not found stays absent from
// the accumulator, and only materializes as all-blank when the table is
// reindexed to the canonical column order.
//
// =============================================================================

package table

import "strings"

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Table is a column-ordered table of string cells.
// All columns have the same length.
type Table struct {
	// columns holds the column names in insertion order.
	columns []string

	// cells maps a column name to its value sequence.
	cells map[string][]string

	// length is the number of rows.
	length int
}

// New creates an empty table with zero rows and no columns.
func New() *Table {
	return NewWithLength(0)
}

// NewWithLength creates a table with no columns and a fixed row count.
// Columns added later are padded or truncated to this length.
func NewWithLength(rows int) *Table {
	return &Table{
		columns: []string{},
		cells:   make(map[string][]string),
		length:  rows,
	}
}

// FromRows builds a table from a header row and raw data rows.
// Short rows are padded with blank cells so every column sequence has the
// same length; cells beyond the header width are dropped.
func FromRows(header []string, rows [][]string) *Table {
	t := NewWithLength(len(rows))

	for i, name := range header {
		values := make([]string, len(rows))
		for j, row := range rows {
			if i < len(row) {
				values[j] = row[i]
			}
		}
		if _, seen := t.cells[name]; !seen {
			t.columns = append(t.columns, name)
		}
		t.cells[name] = values
	}

	return t
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.length
}

// Columns returns the column names in order.
// The returned slice is a copy and safe to modify.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether the table contains a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cells[name]
	return ok
}

// Column returns the value sequence for a column.
// The second return value is false if the column is absent.
func (t *Table) Column(name string) ([]string, bool) {
	values, ok := t.cells[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, true
}

// Cell returns the value at (column, row index), or the empty string if the
// column is absent or the index is out of range.
func (t *Table) Cell(name string, row int) string {
	values, ok := t.cells[name]
	if !ok || row < 0 || row >= len(values) {
		return ""
	}
	return values[row]
}

// =============================================================================
// MUTATION
// =============================================================================

// SetColumn sets the value sequence for a column, appending the column if it
// is new and overwriting it if it already exists. The sequence is padded with
// blanks or truncated so it matches the table length.
func (t *Table) SetColumn(name string, values []string) {
	fitted := make([]string, t.length)
	copy(fitted, values)

	if _, exists := t.cells[name]; !exists {
		t.columns = append(t.columns, name)
	}
	t.cells[name] = fitted
}

// Fill sets every row of a column to the same literal value, appending the
// column if it is new and overwriting it if it already exists.
func (t *Table) Fill(name, value string) {
	values := make([]string, t.length)
	for i := range values {
		values[i] = value
	}
	t.SetColumn(name, values)
}

// Truncate keeps only the first n rows.
// A negative n or an n beyond the current length leaves the table unchanged.
func (t *Table) Truncate(n int) {
	if n < 0 || n >= t.length {
		return
	}
	for name, values := range t.cells {
		t.cells[name] = values[:n]
	}
	t.length = n
}

// TrimColumnNames strips leading and trailing whitespace from every column
// label, keeping the column order. Later duplicates created by trimming win,
// matching map overwrite semantics.
func (t *Table) TrimColumnNames() {
	trimmed := make([]string, 0, len(t.columns))
	cells := make(map[string][]string, len(t.cells))

	for _, name := range t.columns {
		clean := strings.TrimSpace(name)
		if _, seen := cells[clean]; !seen {
			trimmed = append(trimmed, clean)
		}
		cells[clean] = t.cells[name]
	}

	t.columns = trimmed
	t.cells = cells
}

// =============================================================================
// REINDEXING
// =============================================================================

// Reindex returns a new table whose column sequence is exactly the given
// order. Columns present here but absent from the order are dropped; columns
// in the order but absent here are created as all-blank.
func (t *Table) Reindex(order []string) *Table {
	out := NewWithLength(t.length)
	for _, name := range order {
		if values, ok := t.cells[name]; ok {
			out.SetColumn(name, values)
		} else {
			out.Fill(name, "")
		}
	}
	return out
}

// Rows materializes the table as raw rows in column order.
// Used by the writer to serialize data rows.
func (t *Table) Rows() [][]string {
	rows := make([][]string, t.length)
	for i := range rows {
		row := make([]string, len(t.columns))
		for j, name := range t.columns {
			row[j] = t.cells[name][i]
		}
		rows[i] = row
	}
	return rows
}
