package models

import "github.com/username/eduplan/backend/src/quality"

// FeeProjectionPoint is one year of a fee chart series; IsActual marks
// published fees as opposed to CAGR projections.
type FeeProjectionPoint struct {
	Year     int     `json:"year"`
	FeeGBP   float64 `json:"fee_gbp"`
	IsActual bool    `json:"is_actual"`
}

// FxProjectionPoint is one year of an FX chart series; IsObserved marks
// rates taken from the historical series as opposed to trend projections.
type FxProjectionPoint struct {
	Year       int     `json:"year"`
	Rate       float64 `json:"rate"`
	IsObserved bool    `json:"is_observed"`
}

// ProjectionDetails bundles everything the presentation layer needs to chart
// a course's cost outlook.
type ProjectionDetails struct {
	University    string                   `json:"university"`
	Programme     string                   `json:"programme"`
	EducationYear int                      `json:"education_year"`
	Fees          []FeeProjectionPoint     `json:"fees"`
	FxRates       []FxProjectionPoint      `json:"fx_rates"`
	CAGR          float64                  `json:"cagr"`
	Transparency  quality.DataTransparency `json:"transparency"`
}
