package processors

import (
	"math"
	"testing"
	"time"

	"github.com/username/eduplan/backend/src/models"
	"github.com/username/eduplan/backend/src/quality"
)

func feeRec(university, programme string, year int, fee float64) models.FeeRecord {
	return models.FeeRecord{
		University:   university,
		Programme:    programme,
		AcademicYear: year,
		FeeStatus:    models.FeeStatusOverseas,
		FeeGBP:       fee,
		DegreeLevel:  "Undergraduate",
	}
}

func fxPoint(year int, month time.Month, rate float64) models.FxRatePoint {
	return models.FxRatePoint{Month: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), Rate: rate}
}

func interestPoint(year int, month time.Month, rate float64) models.InterestRatePoint {
	return models.InterestRatePoint{Month: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), Rate: rate}
}

func testAccessor() *HistoricalDataAccessor {
	fees := []models.FeeRecord{
		feeRec("Oxford", "Computer Science", 2021, 35080),
		feeRec("Oxford", "Computer Science", 2025, 46500),
		feeRec("Oxford", "Law", 2024, 39000),
		feeRec("Cambridge", "Economics", 2023, 38000),
		feeRec("Cambridge", "Economics", 2025, 41000),
	}
	fx := []models.FxRatePoint{
		fxPoint(2023, time.September, 103.50),
		fxPoint(2024, time.June, 106.00),
		fxPoint(2024, time.December, 108.00),
		fxPoint(2025, time.September, 119.14),
	}
	interest := []models.InterestRatePoint{
		interestPoint(2024, time.January, 0.0525),
		interestPoint(2024, time.July, 0.0475),
	}
	return NewHistoricalDataAccessor(fees, fx, interest)
}

func TestUniversitiesAndCoursesSorted(t *testing.T) {
	a := testAccessor()

	unis := a.Universities()
	if len(unis) != 2 || unis[0] != "Cambridge" || unis[1] != "Oxford" {
		t.Errorf("Universities() = %v, want [Cambridge Oxford]", unis)
	}

	courses := a.Courses("Oxford")
	if len(courses) != 2 || courses[0] != "Computer Science" || courses[1] != "Law" {
		t.Errorf("Courses(Oxford) = %v, want [Computer Science Law]", courses)
	}

	if got := a.Courses("Hogwarts"); len(got) != 0 {
		t.Errorf("Courses for unknown university = %v, want empty", got)
	}
}

func TestHasUniversityAndCourse(t *testing.T) {
	a := testAccessor()

	if !a.HasUniversity("Oxford") || a.HasUniversity("Hogwarts") {
		t.Error("HasUniversity should know Oxford and not Hogwarts")
	}
	if !a.HasCourse("Oxford", "Law") || a.HasCourse("Oxford", "Potions") {
		t.Error("HasCourse should know Oxford Law and not Potions")
	}
}

func TestGetCourseCAGR(t *testing.T) {
	a := testAccessor()

	// 35080 -> 46500 over 4 years.
	got := a.GetCourseCAGR("Oxford", "Computer Science")
	want := math.Pow(46500.0/35080.0, 1.0/4.0) - 1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("course CAGR = %v, want %v", got, want)
	}
}

func TestGetCourseCAGRFallsBackToUniversityAverage(t *testing.T) {
	a := testAccessor()

	// Law has a single data point; the university average comes from CS.
	got := a.GetCourseCAGR("Oxford", "Law")
	want := a.GetUniversityCAGR("Oxford")
	if got != want {
		t.Errorf("single-point course CAGR = %v, want university average %v", got, want)
	}
}

func TestGetUniversityCAGRFallbacks(t *testing.T) {
	empty := NewHistoricalDataAccessor(
		[]models.FeeRecord{feeRec("Oxford", "Law", 2024, 39000)}, nil, nil)

	tests := []struct {
		university string
		want       float64
	}{
		{"Oxford", 0.0845},   // single point, per-university default
		{"Cambridge", 0.0501},
		{"LSE", 0.0505},
		{"Unknown Tech", 0.06},
	}
	for _, tc := range tests {
		if got := empty.GetUniversityCAGR(tc.university); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("GetUniversityCAGR(%s) = %v, want %v", tc.university, got, tc.want)
		}
	}
}

func TestGetUniversityCAGRMemoized(t *testing.T) {
	a := testAccessor()
	first := a.GetUniversityCAGR("Oxford")
	second := a.GetUniversityCAGR("Oxford")
	if first != second {
		t.Errorf("memoized CAGR changed between calls: %v then %v", first, second)
	}
	if _, ok := a.universityCAGRs["Oxford"]; !ok {
		t.Error("university CAGR not memoized after lookup")
	}
}

func TestProjectFee(t *testing.T) {
	a := testAccessor()

	cagr := a.GetCourseCAGR("Oxford", "Computer Science")
	want := 46500 * math.Pow(1+cagr, 2) // base year 2025, target 2027
	got := a.ProjectFee("Oxford", "Computer Science", 2027)
	if math.Abs(got-want) > 0.01 {
		t.Errorf("ProjectFee 2027 = %v, want %v", got, want)
	}
	// Two compounded years at ~7.3% on the £46,500 base.
	if math.Abs(got-53540) > 150 {
		t.Errorf("ProjectFee 2027 = %v, want roughly £53,500", got)
	}

	// Target at the latest actual year returns the published fee.
	if got := a.ProjectFee("Oxford", "Computer Science", 2025); got != 46500 {
		t.Errorf("ProjectFee at latest actual year = %v, want 46500", got)
	}
}

func TestProjectFeeUnknownCourseFallsBack(t *testing.T) {
	a := testAccessor()

	// Unknown programme under a known university: latest-year average base.
	got := a.ProjectFee("Oxford", "Medicine", 2025)
	if got <= 0 {
		t.Errorf("fallback projection = %v, want positive", got)
	}

	// Fully unknown university bottoms out at the fixed default fee.
	unknown := a.ProjectFee("Hogwarts", "Defense", 2025)
	if unknown != DefaultLatestFeeGBP {
		t.Errorf("unknown university fee = %v, want %v", unknown, DefaultLatestFeeGBP)
	}
}

func TestProjectFeeFallbackBaseYearFromFeeData(t *testing.T) {
	// Fee data ending before the FX reference year: the fallback base year
	// must come from the fee set, not the FX constant.
	fees := []models.FeeRecord{
		feeRec("Cambridge", "Economics", 2022, 38000),
		feeRec("Cambridge", "Economics", 2023, 40000),
	}
	a := NewHistoricalDataAccessor(fees, nil, nil)

	cagr := a.GetUniversityCAGR("Cambridge")
	want := 40000 * math.Pow(1+cagr, 2) // base year 2023, target 2025
	got := a.ProjectFee("Cambridge", "History", 2025)
	if math.Abs(got-want) > 0.01 {
		t.Errorf("fallback projection = %v, want %v compounded from 2023", got, want)
	}
	if got <= 40000 {
		t.Errorf("fallback projection = %v, want growth above the 2023 base fee", got)
	}
}

func TestGetFxRateSeptemberPreferred(t *testing.T) {
	a := testAccessor()
	if got := a.GetFxRate(2023); got != 103.50 {
		t.Errorf("2023 rate = %v, want September observation 103.50", got)
	}
}

func TestGetFxRateYearAverageFallback(t *testing.T) {
	a := testAccessor()
	// 2024 has no September observation; average of June and December.
	if got := a.GetFxRate(2024); math.Abs(got-107.0) > 1e-9 {
		t.Errorf("2024 rate = %v, want year average 107.0", got)
	}
}

func TestGetFxRateProjectionFallback(t *testing.T) {
	a := testAccessor()
	// 2027 has no observations: 119.14 compounded two years at 4.18%.
	want := FxBaseRate * math.Pow(1+FxProjectionCAGR, 2)
	got := a.GetFxRate(2027)
	if math.Abs(got-want) > 0.01 {
		t.Errorf("projected 2027 rate = %v, want %v", got, want)
	}
	if math.Abs(got-129.30) > 0.05 {
		t.Errorf("projected 2027 rate = %v, want ~129.30", got)
	}
}

func TestProjectFxRatePastYearUsesObservedOrBase(t *testing.T) {
	a := testAccessor()

	// Observed past year resolves against data.
	if got := a.ProjectFxRate(2023); got != 103.50 {
		t.Errorf("ProjectFxRate(2023) = %v, want observed 103.50", got)
	}

	// Unobserved past year must settle on the base rate, not recurse.
	if got := a.ProjectFxRate(2021); got != FxBaseRate {
		t.Errorf("ProjectFxRate(2021) = %v, want base rate %v", got, FxBaseRate)
	}
}

func TestGetInterestRate(t *testing.T) {
	a := testAccessor()

	// 2024 average of the two observations.
	if got := a.GetInterestRate(2024); math.Abs(got-0.05) > 1e-9 {
		t.Errorf("2024 interest = %v, want 0.05", got)
	}

	// 2026 has no observations; most recent year's average applies.
	if got := a.GetInterestRate(2026); math.Abs(got-0.05) > 1e-9 {
		t.Errorf("2026 interest = %v, want carried-forward 0.05", got)
	}

	// Entirely empty series falls back to the fixed default.
	bare := NewHistoricalDataAccessor([]models.FeeRecord{feeRec("Oxford", "Law", 2024, 39000)}, nil, nil)
	if got := bare.GetInterestRate(2026); got != DefaultInterestRate {
		t.Errorf("empty-series interest = %v, want %v", got, DefaultInterestRate)
	}
}

func TestGetCourseInfo(t *testing.T) {
	a := testAccessor()
	info := a.GetCourseInfo("Oxford", "Computer Science")

	if info.DataPoints != 2 {
		t.Errorf("data points = %d, want 2", info.DataPoints)
	}
	if info.IsUsingUniversityAverage {
		t.Error("two-point course should use its own CAGR")
	}
	if info.CourseSpecificCAGR == nil {
		t.Fatal("course-specific CAGR missing")
	}
	if info.LatestActualYear != 2025 || info.LatestFee != 46500 {
		t.Errorf("latest year/fee = %d/%v, want 2025/46500", info.LatestActualYear, info.LatestFee)
	}
	if info.Transparency.DataQuality != quality.QualityLimited {
		t.Errorf("quality = %s, want %s", info.Transparency.DataQuality, quality.QualityLimited)
	}
	if info.Transparency.ConfidenceLevel != quality.ConfidenceMedium {
		t.Errorf("confidence = %s, want %s", info.Transparency.ConfidenceLevel, quality.ConfidenceMedium)
	}
}

func TestGetCourseInfoUniversityAverage(t *testing.T) {
	a := testAccessor()
	info := a.GetCourseInfo("Oxford", "Law")

	if !info.IsUsingUniversityAverage {
		t.Error("single-point course should fall back to the university average")
	}
	if info.CourseSpecificCAGR != nil {
		t.Error("course-specific CAGR should be absent for a single point")
	}
	if info.Transparency.ConfidenceLevel != quality.ConfidenceLow {
		t.Errorf("confidence = %s, want %s", info.Transparency.ConfidenceLevel, quality.ConfidenceLow)
	}
	if info.CAGR != info.UniversityAverageCAGR {
		t.Errorf("used CAGR %v should equal university average %v", info.CAGR, info.UniversityAverageCAGR)
	}
}
