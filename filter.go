package fundtrack

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidWindow is returned when a window filter start is after its end.
var ErrInvalidWindow = errors.New("invalid window: start after end")

// MaxDisplaySeries is the default cap on the number of series a display
// surface is asked to render. Beyond it, callers degrade "all holdings" to
// the top cut unioned with explicitly chosen extra series.
const MaxDisplaySeries = 300

// WindowPreset names a date window relative to the table's latest quarter end.
type WindowPreset string

const (
	Window1Y  WindowPreset = "1Y"
	Window3Y  WindowPreset = "3Y"
	Window5Y  WindowPreset = "5Y"
	WindowMax WindowPreset = "Max"
)

// ParseWindowPreset parses a window preset name, case-insensitively.
func ParseWindowPreset(s string) (WindowPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1y":
		return Window1Y, nil
	case "3y":
		return Window3Y, nil
	case "5y":
		return Window5Y, nil
	case "max":
		return WindowMax, nil
	default:
		return "", fmt.Errorf("unknown window preset %q, want 1Y, 3Y, 5Y or Max", s)
	}
}

// days returns the preset length in days, and false for WindowMax.
func (p WindowPreset) days() (int, bool) {
	switch p {
	case Window1Y:
		return 365, true
	case Window3Y:
		return 3 * 365, true
	case Window5Y:
		return 5 * 365, true
	default:
		return 0, false
	}
}

// FilterWindow returns a new table retaining rows with
// from <= quarter end <= to. An empty result is a valid table, not an error;
// a start after the end is rejected with ErrInvalidWindow.
func FilterWindow(t *Table, from, to Date) (*Table, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidWindow, from, to)
	}
	r := Range{From: from, To: to}
	var rows []HoldingRecord
	for row := range t.Rows() {
		if r.Contains(row.QuarterEnd) {
			rows = append(rows, row)
		}
	}
	return newTable(rows), nil
}

// FilterPreset applies a named window preset. The window ends at the table's
// latest quarter end; its start is the preset length before that, clamped to
// the table's earliest quarter end.
func FilterPreset(t *Table, p WindowPreset) (*Table, error) {
	if t.IsEmpty() {
		return newTable(nil), nil
	}
	end := t.MaxDate()
	start := t.MinDate()
	if n, ok := p.days(); ok {
		if s := end.Add(-n); s.After(start) {
			start = s
		}
	}
	return FilterWindow(t, start, end)
}

// SelectTopK returns a new table restricted to the k largest holdings,
// measured by percentage of portfolio at the table's latest quarter end.
//
// Ranking is per raw ticker, not per series: a put and its underlying equity
// share one ranking slot, weighted by the larger of their percentages. Ties
// break alphabetically by ticker. All quarters of a selected ticker are
// retained. k <= 0 yields an empty table.
func SelectTopK(t *Table, k int) *Table {
	if k <= 0 || t.IsEmpty() {
		return newTable(nil)
	}
	end := t.MaxDate()

	weight := make(map[string]Percent)
	var tickers []string
	for row := range t.Rows() {
		if row.QuarterEnd != end {
			continue
		}
		w, seen := weight[row.Ticker]
		if !seen {
			tickers = append(tickers, row.Ticker)
		}
		if !seen || row.Percentage > w {
			weight[row.Ticker] = row.Percentage
		}
	}

	slices.SortFunc(tickers, func(a, b string) int {
		if weight[a] != weight[b] {
			if weight[a] > weight[b] {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})
	if k < len(tickers) {
		tickers = tickers[:k]
	}

	keep := make(map[string]bool, len(tickers))
	for _, s := range tickers {
		keep[s] = true
	}
	var rows []HoldingRecord
	for row := range t.Rows() {
		if keep[row.Ticker] {
			rows = append(rows, row)
		}
	}
	return newTable(rows)
}

// FilterSeries returns a new table retaining only the given series ids.
func FilterSeries(t *Table, ids []string) *Table {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	var rows []HoldingRecord
	for row := range t.Rows() {
		if keep[row.SeriesID()] {
			rows = append(rows, row)
		}
	}
	return newTable(rows)
}

// Union merges two tables derived from the same source, dropping duplicate
// (series, quarter) rows. It backs the display-cap overflow mode: a top-N
// cut unioned with explicitly chosen additional series.
func Union(a, b *Table) *Table {
	type key struct {
		id string
		on Date
	}
	seen := make(map[key]bool, a.Len()+b.Len())
	rows := make([]HoldingRecord, 0, a.Len()+b.Len())
	for _, t := range []*Table{a, b} {
		for row := range t.Rows() {
			k := key{row.SeriesID(), row.QuarterEnd}
			if seen[k] {
				continue
			}
			seen[k] = true
			rows = append(rows, row)
		}
	}
	return newTable(rows)
}
