package utils

import "fmt"

// FormatINR renders an INR amount using Indian units: crore (1e7), lakh
// (1e5), thousand. Display-only; calculations never round through this.
func FormatINR(amount float64) string {
	abs := amount
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1e7:
		return fmt.Sprintf("₹%.1fCr", amount/1e7)
	case abs >= 1e5:
		return fmt.Sprintf("₹%.1fL", amount/1e5)
	case abs >= 1e3:
		return fmt.Sprintf("₹%.1fK", amount/1e3)
	default:
		return fmt.Sprintf("₹%.0f", amount)
	}
}

// FormatSignedINR is FormatINR with an explicit sign, for savings figures
// where negative means the strategy lost money versus the baseline.
func FormatSignedINR(amount float64) string {
	if amount > 0 {
		return "+" + FormatINR(amount)
	}
	if amount < 0 {
		return "-" + FormatINR(-amount)
	}
	return FormatINR(amount)
}
