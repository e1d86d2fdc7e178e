package insights

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"$1,234.50", 1234.5, true},
		{"12%", 12, true},
		{"42", 42, true},
		{"-3.5", -3.5, true},
		{"  7 ", 7, true},
		{"$,%", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"n/a", 0, false},
		{"Infinity", 0, false},
		{"-Inf", 0, false},
		{"NaN", 0, false},
		{"1e3", 1000, true},
		{"0", 0, true},
	}

	for _, test := range tests {
		got, ok := ParseNumber(test.input)
		if ok != test.ok {
			t.Errorf("ParseNumber(%q) ok = %v, want %v", test.input, ok, test.ok)
			continue
		}
		if ok && got != test.expected {
			t.Errorf("ParseNumber(%q) = %v, want %v", test.input, got, test.expected)
		}
	}
}
