package config

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
	}{
		{"100", 100},
		{" 100 ", 100},
		{"100B", 100},
		{"1KiB", 1024},
		{"1.5KiB", 1536},
		{"256MiB", 256 * 1024 * 1024},
		{"1GiB", 1024 * 1024 * 1024},
		{"1TiB", 1024 * 1024 * 1024 * 1024},
		// SI units
		{"1KB", 1000},
		{"1MB", 1000 * 1000},
		{"2 GB", 2 * 1000 * 1000 * 1000},
		{"18446744073709551615", ^uint64(0)},
	}

	for _, tt := range tests {
		result, err := ParseSize(tt.input)
		if err != nil {
			t.Errorf("ParseSize(%q): %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.input, result, tt.expected)
		}
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, input := range []string{"", "invalid", "KB", "-5", "-1MB", "99999999999TiB", "NaN", "nan", "Inf", "+Inf", "1e300", "1e20", "2e7TiB"} {
		if _, err := ParseSize(input); err == nil {
			t.Errorf("ParseSize(%q): expected error", input)
		}
	}
}
