package fundtrack

import (
	"iter"
	"slices"
	"strings"
)

// Table is an ordered collection of holding records, sorted by
// (series id, quarter end) ascending.
//
// A Table is immutable once produced: the window filter and the top-K
// selector return fresh tables, they never touch their input.
type Table struct {
	rows []HoldingRecord
}

// compareRows is the canonical row order of a Table.
func compareRows(a, b HoldingRecord) int {
	if c := strings.Compare(a.SeriesID(), b.SeriesID()); c != 0 {
		return c
	}
	return a.QuarterEnd.Compare(b.QuarterEnd)
}

// newTable builds a table from rows, taking ownership of the slice.
func newTable(rows []HoldingRecord) *Table {
	slices.SortFunc(rows, compareRows)
	return &Table{rows: rows}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// IsEmpty returns true when the table has no rows.
func (t *Table) IsEmpty() bool { return len(t.rows) == 0 }

// Rows returns an iterator over all rows in table order.
func (t *Table) Rows() iter.Seq[HoldingRecord] {
	return func(yield func(HoldingRecord) bool) {
		for _, r := range t.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// Records returns a copy of all rows. Callers own the returned slice.
func (t *Table) Records() []HoldingRecord {
	return slices.Clone(t.rows)
}

// Series returns the distinct series ids, in table order.
func (t *Table) Series() []string {
	var ids []string
	for _, r := range t.rows {
		if n := len(ids); n == 0 || ids[n-1] != r.SeriesID() {
			ids = append(ids, r.SeriesID())
		}
	}
	return ids
}

// MinDate returns the earliest quarter end in the table, zero when empty.
func (t *Table) MinDate() Date {
	var m Date
	for _, r := range t.rows {
		if m.IsZero() || r.QuarterEnd.Before(m) {
			m = r.QuarterEnd
		}
	}
	return m
}

// MaxDate returns the latest quarter end in the table, zero when empty.
// This is the reporting date the top-K selector ranks at.
func (t *Table) MaxDate() Date {
	var m Date
	for _, r := range t.rows {
		if r.QuarterEnd.After(m) {
			m = r.QuarterEnd
		}
	}
	return m
}
