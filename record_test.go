package fundtrack

import "testing"

func TestSeriesID(t *testing.T) {
	tests := []struct {
		option   OptionType
		expected string
	}{
		{NoOption, "XYZ"},
		{Put, "XYZ (put)"},
		{Call, "XYZ (call)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			r := asOption(holding("Q1 2023", "XYZ", 1.0), tt.option)
			if got := r.SeriesID(); got != tt.expected {
				t.Errorf("SeriesID() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseOptionType(t *testing.T) {
	tests := []struct {
		input    string
		expected OptionType
		err      bool
	}{
		{"", NoOption, false},
		{"  ", NoOption, false},
		{"put", Put, false},
		{"PUT", Put, false},
		{"Call", Call, false},
		{"warrant", NoOption, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOptionType(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseOptionType(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseOptionType(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestOptionTypeIsOption(t *testing.T) {
	if NoOption.IsOption() {
		t.Error("NoOption.IsOption() = true")
	}
	if !Put.IsOption() || !Call.IsOption() {
		t.Error("Put/Call.IsOption() = false")
	}
}
