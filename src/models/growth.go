package models

import "time"

// GrowthQuality grades a price series backing a growth curve.
type GrowthQuality string

const (
	GrowthQualityExcellent GrowthQuality = "excellent" // 36+ monthly points
	GrowthQualityGood      GrowthQuality = "good"      // 24+ monthly points
	GrowthQualityFair      GrowthQuality = "fair"      // 12+ monthly points
	GrowthQualityPoor      GrowthQuality = "poor"      // below 12 points
)

// GrowthDataQuality summarizes the data backing a growth computation.
type GrowthDataQuality struct {
	DataPoints    int           `json:"data_points"`
	YearsOfData   float64       `json:"years_of_data"`
	Quality       GrowthQuality `json:"quality"`
	Deterministic bool          `json:"deterministic"` // fixed-rate instrument, no price risk
}

// CurvePoint is one month of a value curve.
type CurvePoint struct {
	Month time.Time `json:"month"`
	Value float64   `json:"value"`
}

// GrowthResult is the outcome of growing a lump sum over a date range.
// Immutable once returned.
type GrowthResult struct {
	Asset            AssetSymbol       `json:"asset"`
	StartMonth       time.Time         `json:"start_month"`
	EndMonth         time.Time         `json:"end_month"`
	Curve            []CurvePoint      `json:"curve"`
	InitialValue     float64           `json:"initial_value"`
	FinalValueNative float64           `json:"final_value_native"`
	CAGR             float64           `json:"cagr"`
	TotalReturn      float64           `json:"total_return"`
	Volatility       float64           `json:"volatility"`   // annualized
	MaxDrawdown      float64           `json:"max_drawdown"` // <= 0, 0 means no drawdown
	Currency         string            `json:"currency"`
	MaxValue         float64           `json:"max_value"`
	MinValue         float64           `json:"min_value"`
	DataQuality      GrowthDataQuality `json:"data_quality"`
}
