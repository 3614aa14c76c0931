package quality

// DataQuality grades how much historical fee data backs a projection.
type DataQuality string

const (
	QualityExcellent    DataQuality = "excellent"    // 5+ years of data
	QualityGood         DataQuality = "good"         // 3-4 years of data
	QualityLimited      DataQuality = "limited"      // 2 years of data
	QualityInsufficient DataQuality = "insufficient" // 1 year only
)

// ConfidenceLevel expresses how much trust a projection deserves.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"   // course-specific CAGR with good data
	ConfidenceMedium ConfidenceLevel = "medium" // course-specific CAGR with limited data
	ConfidenceLow    ConfidenceLevel = "low"    // university average CAGR used
)

// DataTransparency captures everything a caller needs to judge a projection.
type DataTransparency struct {
	DataQuality              DataQuality     `json:"data_quality"`
	ConfidenceLevel          ConfidenceLevel `json:"confidence_level"`
	YearsOfData              int             `json:"years_of_data"`
	ActualDataYears          []int           `json:"actual_data_years"`
	LatestActualYear         int             `json:"latest_actual_year"`
	IsUsingUniversityAverage bool            `json:"is_using_university_average"`
	CalculationMethod        string          `json:"calculation_method"`
}

// Assess grades data quality from the number of fee years available.
func Assess(yearsOfData int) DataQuality {
	switch {
	case yearsOfData >= 5:
		return QualityExcellent
	case yearsOfData >= 3:
		return QualityGood
	case yearsOfData == 2:
		return QualityLimited
	default:
		return QualityInsufficient
	}
}

// Confidence derives the confidence level. A university-average fallback
// always means low confidence, however many years back the average.
func Confidence(dq DataQuality, usingUniversityAverage bool) ConfidenceLevel {
	if usingUniversityAverage {
		return ConfidenceLow
	}
	if dq == QualityExcellent || dq == QualityGood {
		return ConfidenceHigh
	}
	return ConfidenceMedium
}
