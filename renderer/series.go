// Package renderer turns projected holding series into markdown documents.
// It is a display surface: it consumes chartable points and draws nothing
// interactive, terminal rendering is left to the caller.
package renderer

import (
	"bytes"
	"fmt"
	"math"

	"fundtrack"

	md "github.com/nao1215/markdown"
)

// SeriesMarkdown renders a projected series set as a markdown document: one
// table per series, option series annotated the way a chart would dash their
// line, and a source attribution footer.
func SeriesMarkdown(points []fundtrack.SeriesPoint, metricLabel, source string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s over time", metricLabel))
	if hasOptions(points) {
		doc.PlainText("Options are displayed with dashed lines.")
	}

	for _, id := range seriesOrder(points) {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Quarter", "Date", metricLabel},
			Rows:   [][]string{},
		}
		title := id
		for _, p := range points {
			if p.Series != id {
				continue
			}
			if p.Option {
				// mirrors the dashed line style a chart would use
				title = id + " [dashed]"
			}
			table.Rows = append(table.Rows, []string{
				p.Quarter.String(),
				p.QuarterEnd.String(),
				formatValue(p.Value),
			})
		}
		doc.H2(title)
		doc.Table(table)
	}

	if source != "" {
		doc.PlainText(fmt.Sprintf("Data source: %s", source))
	}
	return doc.String()
}

// seriesOrder returns the distinct series ids in first-appearance order.
func seriesOrder(points []fundtrack.SeriesPoint) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, p := range points {
		if !seen[p.Series] {
			seen[p.Series] = true
			ids = append(ids, p.Series)
		}
	}
	return ids
}

func hasOptions(points []fundtrack.SeriesPoint) bool {
	for _, p := range points {
		if p.Option {
			return true
		}
	}
	return false
}

// formatValue renders a point value, NaN (an unreported figure) as a gap.
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
