// backend/src/processors/accessor.go
package processors

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/username/eduplan/backend/src/logger"
	"github.com/username/eduplan/backend/src/models"
	"github.com/username/eduplan/backend/src/parsers"
	"github.com/username/eduplan/backend/src/quality"
	"github.com/username/eduplan/backend/src/utils"
)

// Documented projection constants. These are deliberate, analysis-derived
// values; changing any of them changes every downstream projection.
const (
	// GBP/INR depreciation trend, 2017-2025 conservative estimate.
	FxProjectionCAGR = 0.0418
	// September 2025 reference observation the FX projection compounds from.
	FxBaseYear = 2025
	FxBaseRate = 119.14

	// Used when the interest rate series is entirely empty.
	DefaultInterestRate = 0.04

	// Used when a university has no usable fee history at all.
	DefaultUniversityCAGR = 0.06

	// Last-resort annual fee when even the university is unrecognized.
	DefaultLatestFeeGBP = 40000.0
)

// Per-university fallback CAGRs from the fee analysis, applied only when no
// programme under the university has two or more fee years.
var universityFallbackCAGRs = map[string]float64{
	"Cambridge": 0.0501,
	"Oxford":    0.0845,
	"LSE":       0.0505,
}

type courseKey struct {
	university string
	programme  string
}

// HistoricalDataAccessor answers point and derived queries over the three
// historical datasets. The datasets are read-only after construction; the
// only mutable state is the university CAGR memoization map.
//
// Lookup gaps never raise: every getter resolves through a documented
// fallback chain and returns a best-effort number. Load failures, by
// contrast, are loud and fatal to construction.
type HistoricalDataAccessor struct {
	fees     []models.FeeRecord
	fx       []models.FxRatePoint
	interest []models.InterestRatePoint

	courses      map[courseKey][]models.FeeRecord // sorted by year
	universities map[string][]string              // programme names, sorted

	mu              sync.Mutex
	universityCAGRs map[string]float64
}

// NewHistoricalDataAccessor builds an accessor over already-parsed datasets.
func NewHistoricalDataAccessor(fees []models.FeeRecord, fx []models.FxRatePoint, interest []models.InterestRatePoint) *HistoricalDataAccessor {
	a := &HistoricalDataAccessor{
		fees:            fees,
		fx:              fx,
		interest:        interest,
		courses:         make(map[courseKey][]models.FeeRecord),
		universities:    make(map[string][]string),
		universityCAGRs: make(map[string]float64),
	}

	for _, rec := range fees {
		key := courseKey{rec.University, rec.Programme}
		a.courses[key] = append(a.courses[key], rec)
	}
	for key, recs := range a.courses {
		sort.Slice(recs, func(i, j int) bool { return recs[i].AcademicYear < recs[j].AcademicYear })
		a.universities[key.university] = append(a.universities[key.university], key.programme)
	}
	for _, programmes := range a.universities {
		sort.Strings(programmes)
	}
	return a
}

// LoadFromFiles parses the three datasets from disk and builds an accessor.
// Any missing or malformed file fails the whole load; callers must not
// proceed with partial data.
func LoadFromFiles(feesPath, fxPath, interestPath string) (*HistoricalDataAccessor, error) {
	feeFile, err := os.Open(feesPath)
	if err != nil {
		return nil, fmt.Errorf("opening fee data %q: %w", feesPath, err)
	}
	defer feeFile.Close()
	fees, err := parsers.NewFeeParser().Parse(feeFile)
	if err != nil {
		return nil, fmt.Errorf("parsing fee data %q: %w", feesPath, err)
	}

	fxFile, err := os.Open(fxPath)
	if err != nil {
		return nil, fmt.Errorf("opening FX data %q: %w", fxPath, err)
	}
	defer fxFile.Close()
	fx, err := parsers.NewFxRateParser().Parse(fxFile)
	if err != nil {
		return nil, fmt.Errorf("parsing FX data %q: %w", fxPath, err)
	}

	interestFile, err := os.Open(interestPath)
	if err != nil {
		return nil, fmt.Errorf("opening interest rate data %q: %w", interestPath, err)
	}
	defer interestFile.Close()
	interest, err := parsers.NewInterestRateParser().Parse(interestFile)
	if err != nil {
		return nil, fmt.Errorf("parsing interest rate data %q: %w", interestPath, err)
	}

	accessor := NewHistoricalDataAccessor(fees, fx, interest)
	logger.L.Info("Historical datasets loaded",
		"feeRecords", len(accessor.fees),
		"fxPoints", len(accessor.fx),
		"interestPoints", len(accessor.interest),
		"universities", len(accessor.universities))
	return accessor, nil
}

// Universities returns the known universities, sorted.
func (a *HistoricalDataAccessor) Universities() []string {
	names := make([]string, 0, len(a.universities))
	for name := range a.universities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Courses returns the programmes offered by a university, sorted. Unknown
// universities yield an empty list.
func (a *HistoricalDataAccessor) Courses(university string) []string {
	programmes := a.universities[university]
	out := make([]string, len(programmes))
	copy(out, programmes)
	return out
}

// HasUniversity reports whether the fee table knows this university.
func (a *HistoricalDataAccessor) HasUniversity(university string) bool {
	_, ok := a.universities[university]
	return ok
}

// HasCourse reports whether the fee table knows this exact pair.
func (a *HistoricalDataAccessor) HasCourse(university, programme string) bool {
	_, ok := a.courses[courseKey{university, programme}]
	return ok
}

func (a *HistoricalDataAccessor) courseRecords(university, programme string) []models.FeeRecord {
	return a.courses[courseKey{university, programme}]
}

// courseCAGRFromRecords computes a course-specific CAGR from the first and
// last available fee year. Returns false when fewer than two points exist or
// the span is degenerate.
func courseCAGRFromRecords(recs []models.FeeRecord) (float64, bool) {
	if len(recs) < 2 {
		return 0, false
	}
	first, last := recs[0], recs[len(recs)-1]
	years := last.AcademicYear - first.AcademicYear
	if years <= 0 || first.FeeGBP <= 0 {
		return 0, false
	}
	return utils.ComputeCAGR(first.FeeGBP, last.FeeGBP, float64(years)), true
}

// GetCourseCAGR returns the fee CAGR for an exact (university, programme)
// pair, falling back to the university average when fewer than two fee years
// exist for the course.
func (a *HistoricalDataAccessor) GetCourseCAGR(university, programme string) float64 {
	if cagr, ok := courseCAGRFromRecords(a.courseRecords(university, programme)); ok {
		return cagr
	}
	return a.GetUniversityCAGR(university)
}

// GetUniversityCAGR averages the CAGRs of every programme under the
// university with at least two fee years. With no qualifying programme it
// falls back to the per-university default, then the global default. The
// result is memoized for the life of the process: source data never changes
// at runtime.
func (a *HistoricalDataAccessor) GetUniversityCAGR(university string) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if cagr, ok := a.universityCAGRs[university]; ok {
		return cagr
	}

	var sum float64
	var count int
	for _, programme := range a.universities[university] {
		if cagr, ok := courseCAGRFromRecords(a.courseRecords(university, programme)); ok {
			sum += cagr
			count++
		}
	}

	var cagr float64
	switch {
	case count > 0:
		cagr = sum / float64(count)
	default:
		fallback, ok := universityFallbackCAGRs[university]
		if !ok {
			fallback = DefaultUniversityCAGR
			logger.L.Warn("Unknown university, using global default CAGR", "university", university, "cagr", fallback)
		}
		cagr = fallback
	}

	a.universityCAGRs[university] = cagr
	return cagr
}

// LatestFee returns the most recent published fee for a course. Courses
// without records fall back to the university-wide latest-year average, then
// to a fixed default when the university itself is unrecognized.
func (a *HistoricalDataAccessor) LatestFee(university, programme string) float64 {
	recs := a.courseRecords(university, programme)
	if len(recs) > 0 {
		return recs[len(recs)-1].FeeGBP
	}

	latestYear := 0
	for _, p := range a.universities[university] {
		if rs := a.courseRecords(university, p); len(rs) > 0 {
			if y := rs[len(rs)-1].AcademicYear; y > latestYear {
				latestYear = y
			}
		}
	}
	if latestYear == 0 {
		return DefaultLatestFeeGBP
	}

	var sum float64
	var count int
	for _, p := range a.universities[university] {
		for _, rec := range a.courseRecords(university, p) {
			if rec.AcademicYear == latestYear {
				sum += rec.FeeGBP
				count++
			}
		}
	}
	if count == 0 {
		return DefaultLatestFeeGBP
	}
	return sum / float64(count)
}

// ProjectFee projects the annual fee for a course in a target year,
// compounding from the course's own most recent actual year. Different
// programmes may have different latest years, so the base year is always
// derived from the data, never assumed.
func (a *HistoricalDataAccessor) ProjectFee(university, programme string, targetYear int) float64 {
	var baseFee float64
	var baseYear int

	recs := a.courseRecords(university, programme)
	if len(recs) > 0 {
		last := recs[len(recs)-1]
		baseFee, baseYear = last.FeeGBP, last.AcademicYear
	} else {
		baseFee = a.LatestFee(university, programme)
		baseYear = a.latestFeeYear()
	}

	cagr := a.GetCourseCAGR(university, programme)
	return utils.ProjectValue(baseFee, baseYear, targetYear, cagr)
}

func (a *HistoricalDataAccessor) latestFeeYear() int {
	year := 0
	for _, rec := range a.fees {
		if rec.AcademicYear > year {
			year = rec.AcademicYear
		}
	}
	if year == 0 {
		return FxBaseYear
	}
	return year
}

// GetFxRate returns the GBP/INR rate for a calendar year: the September
// observation when present (September is when academic-year fees are set),
// otherwise the average of the year's observations, otherwise the projected
// trend rate.
func (a *HistoricalDataAccessor) GetFxRate(year int) float64 {
	if rate, ok := a.ObservedFxRate(year); ok {
		return rate
	}
	return a.ProjectFxRate(year)
}

// ObservedFxRate resolves a year strictly against observed data: the
// September observation when present, else the year's average. The second
// return is false when the year has no observations at all.
func (a *HistoricalDataAccessor) ObservedFxRate(year int) (float64, bool) {
	var sum float64
	var count int
	for _, p := range a.fx {
		if p.Month.Year() != year {
			continue
		}
		if p.Month.Month() == time.September {
			return p.Rate, true
		}
		sum += p.Rate
		count++
	}
	if count > 0 {
		return sum / float64(count), true
	}
	return 0, false
}

// ProjectFxRate compounds the documented depreciation trend forward from the
// September 2025 base observation. Target years at or before the base year
// resolve against observed data only, falling back to the base rate itself;
// re-entering the year-lookup chain here would recurse.
func (a *HistoricalDataAccessor) ProjectFxRate(targetYear int) float64 {
	if targetYear <= FxBaseYear {
		if rate, ok := a.ObservedFxRate(targetYear); ok {
			return rate
		}
		return FxBaseRate
	}
	return utils.ProjectValue(FxBaseRate, FxBaseYear, targetYear, FxProjectionCAGR)
}

// GetInterestRate returns the average UK base rate for a year. Years with no
// observations use the most recent observed year's average; an empty series
// uses the fixed fallback.
func (a *HistoricalDataAccessor) GetInterestRate(year int) float64 {
	if avg, ok := a.interestAverageFor(year); ok {
		return avg
	}

	latest := 0
	for _, p := range a.interest {
		if y := p.Month.Year(); y > latest && y < year {
			latest = y
		}
	}
	if latest == 0 {
		// Nothing before the requested year either; take the newest year at all.
		for _, p := range a.interest {
			if y := p.Month.Year(); y > latest {
				latest = y
			}
		}
	}
	if latest != 0 {
		if avg, ok := a.interestAverageFor(latest); ok {
			return avg
		}
	}
	return DefaultInterestRate
}

func (a *HistoricalDataAccessor) interestAverageFor(year int) (float64, bool) {
	var sum float64
	var count int
	for _, p := range a.interest {
		if p.Month.Year() == year {
			sum += p.Rate
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// GetCourseInfo assembles the full derived snapshot for a course, including
// the transparency block the presentation layer uses for disclaimers.
func (a *HistoricalDataAccessor) GetCourseInfo(university, programme string) models.CourseInfo {
	recs := a.courseRecords(university, programme)

	var courseCAGR *float64
	if cagr, ok := courseCAGRFromRecords(recs); ok {
		courseCAGR = &cagr
	}

	universityAvg := a.GetUniversityCAGR(university)
	usedCAGR := universityAvg
	usingAverage := true
	if courseCAGR != nil {
		usedCAGR = *courseCAGR
		usingAverage = false
	}

	historical := make(map[int]float64, len(recs))
	years := make([]int, 0, len(recs))
	latestActualYear := 0
	degreeLevel := "Unknown"
	for _, rec := range recs {
		historical[rec.AcademicYear] = rec.FeeGBP
		years = append(years, rec.AcademicYear)
		if rec.AcademicYear > latestActualYear {
			latestActualYear = rec.AcademicYear
		}
	}
	if len(recs) > 0 {
		degreeLevel = recs[0].DegreeLevel
	}

	dq := quality.Assess(len(recs))
	method := "Course-specific CAGR"
	if usingAverage {
		method = "University average CAGR"
	}

	return models.CourseInfo{
		University:               university,
		Programme:                programme,
		CAGR:                     usedCAGR,
		LatestFee:                a.LatestFee(university, programme),
		LatestActualYear:         latestActualYear,
		HistoricalFees:           historical,
		DataPoints:               len(recs),
		DegreeLevel:              degreeLevel,
		IsUsingUniversityAverage: usingAverage,
		CourseSpecificCAGR:       courseCAGR,
		UniversityAverageCAGR:    universityAvg,
		Transparency: quality.DataTransparency{
			DataQuality:              dq,
			ConfidenceLevel:          quality.Confidence(dq, usingAverage),
			YearsOfData:              len(recs),
			ActualDataYears:          years,
			LatestActualYear:         latestActualYear,
			IsUsingUniversityAverage: usingAverage,
			CalculationMethod:        method,
		},
	}
}
