package utils

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{25_000_000, "₹2.5Cr"},
		{10_000_000, "₹1.0Cr"},
		{450_000, "₹4.5L"},
		{100_000, "₹1.0L"},
		{7_500, "₹7.5K"},
		{950, "₹950"},
		{0, "₹0"},
		{-450_000, "₹-4.5L"},
	}
	for _, tc := range tests {
		if got := FormatINR(tc.amount); got != tc.expected {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.amount, got, tc.expected)
		}
	}
}

func TestFormatSignedINR(t *testing.T) {
	if got := FormatSignedINR(450_000); got != "+₹4.5L" {
		t.Errorf("positive = %q, want +₹4.5L", got)
	}
	if got := FormatSignedINR(-450_000); got != "-₹4.5L" {
		t.Errorf("negative = %q, want -₹4.5L", got)
	}
	if got := FormatSignedINR(0); got != "₹0" {
		t.Errorf("zero = %q, want ₹0", got)
	}
}
