package fundtrack

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2023-11-14 ", NewDate(2023, time.November, 14), false},
		{"2023-11-14T00:00:00Z", NewDate(2023, time.November, 14), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseQuarter(t *testing.T) {
	tests := []struct {
		input    string
		expected Quarter
		err      bool
	}{
		{"Q1 2023", Quarter{2023, 1}, false},
		{"q4 1999", Quarter{1999, 4}, false},
		{"  Q2   2024 ", Quarter{2024, 2}, false},
		{"Q5 2023", Quarter{}, true},
		{"Q0 2023", Quarter{}, true},
		{"2023 Q1", Quarter{}, true},
		{"Q1", Quarter{}, true},
		{"", Quarter{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQuarter(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseQuarter(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseQuarter(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestQuarterEnd asserts the deterministic quarter-end mapping every record
// of a reporting period shares.
func TestQuarterEnd(t *testing.T) {
	tests := []struct {
		quarter Quarter
		end     Date
	}{
		{Quarter{2023, 1}, NewDate(2023, time.March, 31)},
		{Quarter{2023, 2}, NewDate(2023, time.June, 30)},
		{Quarter{2023, 3}, NewDate(2023, time.September, 30)},
		{Quarter{2023, 4}, NewDate(2023, time.December, 31)},
		{Quarter{2024, 1}, NewDate(2024, time.March, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.quarter.String(), func(t *testing.T) {
			if got := tt.quarter.End(); got != tt.end {
				t.Errorf("%v.End() = %v, want %v", tt.quarter, got, tt.end)
			}
		})
	}
}

func TestQuarterOf(t *testing.T) {
	for q := 1; q <= 4; q++ {
		quarter := Quarter{2023, q}
		if got := QuarterOf(quarter.End()); got != quarter {
			t.Errorf("QuarterOf(%v) = %v, want %v", quarter.End(), got, quarter)
		}
	}
}

func TestQuarterString(t *testing.T) {
	if got := (Quarter{2023, 3}).String(); got != "Q3 2023" {
		t.Errorf("String() = %q, want %q", got, "Q3 2023")
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(NewDate(2023, time.March, 31), NewDate(2023, time.September, 30))

	if !r.Contains(NewDate(2023, time.March, 31)) {
		t.Error("Contains(from) = false, boundaries are included")
	}
	if !r.Contains(NewDate(2023, time.September, 30)) {
		t.Error("Contains(to) = false, boundaries are included")
	}
	if !r.Contains(NewDate(2023, time.June, 30)) {
		t.Error("Contains(inside) = false")
	}
	if r.Contains(NewDate(2023, time.December, 31)) {
		t.Error("Contains(after) = true")
	}

	// swapped bounds are normalized
	swapped := NewRange(r.To, r.From)
	if swapped != r {
		t.Errorf("NewRange(to, from) = %v, want %v", swapped, r)
	}
}
