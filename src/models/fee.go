// backend/src/models/fee.go
package models

import "github.com/username/eduplan/backend/src/quality"

// FeeStatus distinguishes home and overseas fee schedules. Only overseas
// records are used for projections; domestic rows are dropped at parse time.
type FeeStatus string

const (
	FeeStatusDomestic FeeStatus = "domestic"
	FeeStatusOverseas FeeStatus = "overseas"
)

// FeeRecord is one row of the published tuition fee table.
type FeeRecord struct {
	University   string    `json:"university"`
	Programme    string    `json:"programme"`
	AcademicYear int       `json:"academic_year"` // first calendar year of "2024/25"
	FeeStatus    FeeStatus `json:"fee_status"`
	FeeGBP       float64   `json:"fee_gbp"`
	DegreeLevel  string    `json:"degree_level"`
}

// CourseInfo is a derived snapshot for one (university, programme) pair.
// Recomputed on every query, never mutated in place.
type CourseInfo struct {
	University               string                   `json:"university"`
	Programme                string                   `json:"programme"`
	CAGR                     float64                  `json:"cagr"`
	LatestFee                float64                  `json:"latest_fee"`
	LatestActualYear         int                      `json:"latest_actual_year"`
	HistoricalFees           map[int]float64          `json:"historical_fees"`
	DataPoints               int                      `json:"data_points"`
	DegreeLevel              string                   `json:"degree_level"`
	IsUsingUniversityAverage bool                     `json:"is_using_university_average"`
	CourseSpecificCAGR       *float64                 `json:"course_specific_cagr,omitempty"`
	UniversityAverageCAGR    float64                  `json:"university_average_cagr"`
	Transparency             quality.DataTransparency `json:"transparency"`
}
