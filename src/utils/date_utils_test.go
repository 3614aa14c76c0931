package utils

import (
	"math"
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"2024-09", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), false},
		{"2024-09-15", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), false},
		{"2024-09-01", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), false},
		{"September 2024", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tc := range tests {
		got, err := ParseMonth(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMonth(%q): expected error, got %v", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMonth(%q): unexpected error %v", tc.input, err)
			continue
		}
		if !got.Equal(tc.expected) {
			t.Errorf("ParseMonth(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestYearsBetween(t *testing.T) {
	start := time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	got := YearsBetween(start, end)
	if math.Abs(got-3.0) > 0.01 {
		t.Errorf("YearsBetween over 3 calendar years = %v, want ~3.0", got)
	}
}

func TestSeptemberOf(t *testing.T) {
	got := SeptemberOf(2027)
	want := time.Date(2027, time.September, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SeptemberOf(2027) = %v, want %v", got, want)
	}
}
