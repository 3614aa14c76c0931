package models

import "time"

// FxRatePoint is one monthly GBP/INR observation (INR per GBP).
type FxRatePoint struct {
	Month time.Time `json:"month"`
	Rate  float64   `json:"rate"`
}

// InterestRatePoint is one monthly Bank of England base rate observation.
// Rate is an annual fraction, e.g. 0.05 for 5%.
type InterestRatePoint struct {
	Month time.Time `json:"month"`
	Rate  float64   `json:"rate"`
}
