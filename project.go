package fundtrack

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Metric selects which holding figure a projection plots.
type Metric int

const (
	MetricPercentage Metric = iota
	MetricShares
	MetricValue
)

// ParseMetric parses a metric name.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percentage", "percent":
		return MetricPercentage, nil
	case "shares":
		return MetricShares, nil
	case "value":
		return MetricValue, nil
	default:
		return 0, fmt.Errorf("unknown metric %q, want percentage, shares or value", s)
	}
}

// Label returns the human-readable axis label for the metric.
func (m Metric) Label() string {
	switch m {
	case MetricPercentage:
		return "Percentage of portfolio"
	case MetricShares:
		return "Number of shares"
	case MetricValue:
		return "Value"
	default:
		panic(fmt.Sprintf("unknown metric %d", int(m)))
	}
}

func (m Metric) String() string {
	switch m {
	case MetricPercentage:
		return "percentage"
	case MetricShares:
		return "shares"
	case MetricValue:
		return "value"
	default:
		panic(fmt.Sprintf("unknown metric %d", int(m)))
	}
}

// SeriesPoint is one chartable observation: x, y, which line it belongs to,
// and whether that line should be drawn in the distinguishing option style
// (dashed).
type SeriesPoint struct {
	QuarterEnd Date
	Quarter    Quarter
	Value      float64
	Series     string
	Option     bool
}

// Project maps a table to a flat sequence of chartable points for the given
// metric, in table order. It performs no filtering and no mutation; a null
// source figure projects as NaN so the display surface can leave a gap.
func Project(t *Table, m Metric) []SeriesPoint {
	points := make([]SeriesPoint, 0, t.Len())
	for row := range t.Rows() {
		var v float64
		switch m {
		case MetricPercentage:
			v = float64(row.Percentage)
		case MetricShares:
			v = nullFloat(row.Shares)
		case MetricValue:
			v = nullFloat(row.Value)
		}
		points = append(points, SeriesPoint{
			QuarterEnd: row.QuarterEnd,
			Quarter:    row.Quarter,
			Value:      v,
			Series:     row.SeriesID(),
			Option:     row.Option.IsOption(),
		})
	}
	return points
}

// nullFloat converts a nullable decimal for charting, null becoming NaN.
func nullFloat(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return math.NaN()
	}
	return d.Decimal.InexactFloat64()
}
