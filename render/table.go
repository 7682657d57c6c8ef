// Package render holds the presentation models shared by every report view:
// a sortable table over typed rows and a bar chart over a numeric series.
package render

import (
	"errors"
	"fmt"
	"slices"
)

// Record is a report row whose columns can be looked up by key
type Record interface {
	Field(key string) any
}

var ErrColumnNotSortable = errors.New("column is not sortable")

type SortDirection int

const (
	Unsorted SortDirection = iota
	Ascending
	Descending
)

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	}
	return ""
}

// SortState is the column the table is currently ordered by
type SortState struct {
	Column    string
	Direction SortDirection
}

// Table renders rows in input order until a sortable column is toggled.
type Table[R Record] struct {
	Title    string
	columns  []string
	sortable map[string]bool
	input    []R
	rows     []R
	state    SortState
}

// NewTable builds a table showing columns for rows. Only the keys listed in
// sortable accept ToggleSort.
func NewTable[R Record](title string, rows []R, columns []string, sortable ...string) *Table[R] {
	t := &Table[R]{
		Title:    title,
		columns:  slices.Clone(columns),
		sortable: make(map[string]bool, len(sortable)),
		input:    slices.Clone(rows),
	}
	for _, key := range sortable {
		t.sortable[key] = true
	}
	t.rows = slices.Clone(t.input)
	return t
}

func (t *Table[R]) Columns() []string {
	return slices.Clone(t.columns)
}

func (t *Table[R]) IsSortable(key string) bool {
	return t.sortable[key]
}

func (t *Table[R]) SortState() SortState {
	return t.state
}

func (t *Table[R]) Len() int {
	return len(t.rows)
}

// Rows returns the rows in display order
func (t *Table[R]) Rows() []R {
	return slices.Clone(t.rows)
}

// ToggleSort orders by key ascending, or flips the direction when key is
// already the sort column.
func (t *Table[R]) ToggleSort(key string) error {
	if !t.sortable[key] {
		return fmt.Errorf("%w: %q", ErrColumnNotSortable, key)
	}

	if t.state.Column == key && t.state.Direction == Ascending {
		t.state.Direction = Descending
	} else {
		t.state = SortState{Column: key, Direction: Ascending}
	}
	t.apply()
	return nil
}

// ClearSort restores input order
func (t *Table[R]) ClearSort() {
	t.state = SortState{}
	t.rows = slices.Clone(t.input)
}

func (t *Table[R]) apply() {
	rows := slices.Clone(t.input)
	key, desc := t.state.Column, t.state.Direction == Descending
	slices.SortStableFunc(rows, func(a, b R) int {
		c := compareValues(a.Field(key), b.Field(key))
		if desc {
			return -c
		}
		return c
	})
	t.rows = rows
}

// Cells formats every displayed row as one string per column
func (t *Table[R]) Cells() [][]string {
	cells := make([][]string, len(t.rows))
	for i, row := range t.rows {
		line := make([]string, len(t.columns))
		for j, key := range t.columns {
			line[j] = FormatValue(row.Field(key))
		}
		cells[i] = line
	}
	return cells
}
