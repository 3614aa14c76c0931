// backend/src/services/interfaces.go
package services

import (
	"github.com/username/eduplan/backend/src/models"
)

// ROIRequest carries the parameters of an investment comparison. AssetTypes
// may be empty; the service substitutes the default pair.
type ROIRequest struct {
	University     string               `json:"university"`
	Programme      string               `json:"programme"`
	ConversionYear int                  `json:"conversion_year"`
	EducationYear  int                  `json:"education_year"`
	AmountINR      float64              `json:"amount_inr"`
	AssetTypes     []models.AssetSymbol `json:"asset_types"`
}

// ScenarioService is the calculation surface the HTTP layer talks to. Every
// method is a pure function of the loaded datasets plus its parameters;
// results are fresh values, safe to cache and to serialize.
type ScenarioService interface {
	Universities() []string
	Courses(university string) []string
	CourseInfo(university, programme string) models.CourseInfo
	ProjectFee(university, programme string, year int) float64
	FxRate(year int) float64
	TotalProgrammeCost(university, programme string, educationYear int) float64

	CompareAllStrategies(university, programme string, conversionYear, educationYear int) ([]models.SavingsScenario, error)
	CalculateROIScenarios(req ROIRequest) ([]models.SavingsScenario, error)
	ProjectionDetails(university, programme string, educationYear int) (models.ProjectionDetails, error)
}
