package fundtrack

import (
	"math"
	"testing"
)

func TestProject(t *testing.T) {
	table := Normalize([]HoldingRecord{
		holding("Q1 2023", "AAA", 5.0),
		asOption(holding("Q1 2023", "AAA", 2.0), Call),
	})

	points := Project(table, MetricPercentage)
	if len(points) != 2 {
		t.Fatalf("Project() returned %d points, want 2", len(points))
	}

	equity, call := points[0], points[1]
	if equity.Series != "AAA" || call.Series != "AAA (call)" {
		t.Fatalf("series = %q, %q", equity.Series, call.Series)
	}
	if equity.Option {
		t.Error("equity point flagged as option")
	}
	if !call.Option {
		t.Error("call point not flagged as option")
	}
	if equity.Value != 5.0 || call.Value != 2.0 {
		t.Errorf("values = %v, %v, want 5.0, 2.0", equity.Value, call.Value)
	}
	if equity.QuarterEnd != mustQuarter("Q1 2023").End() {
		t.Errorf("QuarterEnd = %v", equity.QuarterEnd)
	}
	if equity.Quarter != mustQuarter("Q1 2023") {
		t.Errorf("Quarter = %v", equity.Quarter)
	}
}

func TestProjectMetrics(t *testing.T) {
	r := holding("Q1 2023", "AAA", 5.0)
	r.Value = num(123000)
	r.Shares = num(42)
	table := Normalize([]HoldingRecord{r})

	tests := []struct {
		metric Metric
		value  float64
	}{
		{MetricPercentage, 5.0},
		{MetricShares, 42},
		{MetricValue, 123000},
	}
	for _, tt := range tests {
		t.Run(tt.metric.String(), func(t *testing.T) {
			points := Project(table, tt.metric)
			if len(points) != 1 || points[0].Value != tt.value {
				t.Errorf("Project(%v) = %v, want one point of %v", tt.metric, points, tt.value)
			}
		})
	}
}

// TestProjectNull asserts that an unreported figure projects as NaN, a gap,
// never as a fabricated zero.
func TestProjectNull(t *testing.T) {
	r := holding("Q1 2023", "AAA", 5.0)
	r.Shares = null()
	table := Normalize([]HoldingRecord{r})

	points := Project(table, MetricShares)
	if len(points) != 1 || !math.IsNaN(points[0].Value) {
		t.Errorf("Project(shares) on null shares = %v, want NaN", points)
	}
}

func TestParseMetric(t *testing.T) {
	tests := []struct {
		input    string
		expected Metric
		err      bool
	}{
		{"percentage", MetricPercentage, false},
		{"percent", MetricPercentage, false},
		{"Shares", MetricShares, false},
		{" value ", MetricValue, false},
		{"price", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMetric(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseMetric(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseMetric(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMetricLabel(t *testing.T) {
	tests := []struct {
		metric Metric
		label  string
	}{
		{MetricPercentage, "Percentage of portfolio"},
		{MetricShares, "Number of shares"},
		{MetricValue, "Value"},
	}
	for _, tt := range tests {
		if got := tt.metric.Label(); got != tt.label {
			t.Errorf("%v.Label() = %q, want %q", tt.metric, got, tt.label)
		}
	}
}
