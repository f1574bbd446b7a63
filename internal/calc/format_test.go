package calc

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"integer", 19, "19"},
		{"negative integer", -7, "-7"},
		{"fraction", 0.5, "0.5"},
		{"small fraction", 0.0000015, "0.0000015"},
		{"micro", 0.000001, "0.000001"},
		{"below plain range", 1e-7, "1e-7"},
		{"above plain range", 1e21, "1e+21"},
		{"fifteen characters kept", 123456789012345, "123456789012345"},
		{"sixteen digits", 1234567890123456, "1.234567890e+15"},
		{"long plain integer", 1e20, "1.000000000e+20"},
		{"float noise", 0.1 + 0.2, "0.3000000000"},
		{"one third", 1.0 / 3, "0.3333333333"},
		{"two thirds rounds", 2.0 / 3, "0.6666666667"},
		{"negative third", -1.0 / 3, "-0.3333333333"},
		{"long small fraction", 0.000012345678901234, "0.00001234567890"},
		{"tiny exponent", 1.2345678901234e-10, "1.234567890e-10"},
		{"plain decimal", 123456.789, "123456.789"},
		{"tie rounds away from zero", 1000000000500000, "1.000000001e+15"},
		{"negative tie rounds away from zero", -1000000000500000, "-1.000000001e+15"},
		{"infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
		{"nan", math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.value); got != tt.expected {
				t.Errorf("FormatNumber(%v) = %q, expected %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestPrecisionString_Carry(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{9999999999.5, "1.000000000e+10"},
		{999999999.95, "1000000000"},
		{0.99999999995, "0.9999999999"}, // stored just below the tie
		{1.00000000025, "1.000000000"},
	}

	for _, test := range tests {
		if got := precisionString(test.value, displayPrecision); got != test.expected {
			t.Errorf("precisionString(%v) = %q, expected %q", test.value, got, test.expected)
		}
	}
}

func TestParseDisplay(t *testing.T) {
	tests := []struct {
		display  string
		expected float64
	}{
		{"0", 0},
		{"0.", 0},
		{"12.", 12},
		{"-7", -7},
		{"0.5", 0.5},
		{"1e+21", 1e21},
		{"1.234567890e+17", 1.23456789e17},
		{".5", 0.5},
		{"1e+21.", 1e21},
		{"1e+21.5", 1e21},
		{"1e", 1},
		{"1e+", 1},
		{"1e+2155", math.Inf(1)},
		{"-1e+999", math.Inf(-1)},
		{"Infinity", math.Inf(1)},
		{"-Infinity5", math.Inf(-1)},
	}

	for _, test := range tests {
		if got := ParseDisplay(test.display); got != test.expected {
			t.Errorf("ParseDisplay(%q) = %v, expected %v", test.display, got, test.expected)
		}
	}

	for _, display := range []string{ErrorDisplay, "", "-", ".", "e5", "NaN"} {
		if got := ParseDisplay(display); !math.IsNaN(got) {
			t.Errorf("ParseDisplay(%q) = %v, expected NaN", display, got)
		}
	}
}
