// backend/src/services/scenario_service.go
package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/username/eduplan/backend/src/growth"
	"github.com/username/eduplan/backend/src/logger"
	"github.com/username/eduplan/backend/src/models"
	"github.com/username/eduplan/backend/src/processors"
	"github.com/username/eduplan/backend/src/utils"
)

// ErrInvalidInput marks request-parameter problems; the HTTP layer maps it
// to 400. ErrDataUnavailable marks missing asset price data; investment
// claims require real data, so this surfaces instead of a synthetic number.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrDataUnavailable = errors.New("market data unavailable")
)

// UK tuition is fixed at enrollment for the programme duration, so the total
// cost is one projected annual fee times this many years.
const ProgrammeDurationYears = 3

// Accepted parameter ranges and plausibility thresholds.
const (
	MinConversionYear = 2020
	MaxConversionYear = 2030
	MinEducationYear  = 2025
	MaxEducationYear  = 2035

	MinInvestmentINR = 100_000    // 1 lakh
	MaxInvestmentINR = 50_000_000 // 5 crore

	extremeCAGRThreshold    = 0.25
	optimisticCAGRThreshold = 0.15
	perYearReturnThreshold  = 0.20
	potMultipleThreshold    = 5.0
)

// PaygBaselineName labels the reference scenario every other strategy is
// measured against.
const PaygBaselineName = "Pay-As-You-Go (Baseline)"

// DefaultROIAssets are compared when the caller does not pick assets.
var DefaultROIAssets = []models.AssetSymbol{models.AssetGoldINR, models.AssetFixed5Pct}

type scenarioService struct {
	accessor    *processors.HistoricalDataAccessor
	growth      *growth.Engine
	resultCache *cache.Cache
}

// NewScenarioService wires the calculator over loaded datasets. Comparison
// results are cached for cacheTTL; the computation is pure, so the cache is
// a transparent optimization.
func NewScenarioService(accessor *processors.HistoricalDataAccessor, engine *growth.Engine, cacheTTL time.Duration) ScenarioService {
	return &scenarioService{
		accessor:    accessor,
		growth:      engine,
		resultCache: cache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *scenarioService) Universities() []string {
	return s.accessor.Universities()
}

func (s *scenarioService) Courses(university string) []string {
	return s.accessor.Courses(university)
}

func (s *scenarioService) CourseInfo(university, programme string) models.CourseInfo {
	return s.accessor.GetCourseInfo(university, programme)
}

func (s *scenarioService) ProjectFee(university, programme string, year int) float64 {
	return s.accessor.ProjectFee(university, programme, year)
}

func (s *scenarioService) FxRate(year int) float64 {
	return s.accessor.GetFxRate(year)
}

// TotalProgrammeCost projects one annual fee at the enrollment year and
// multiplies by the programme duration. Fees are locked at enrollment, so
// later programme years are not projected independently.
func (s *scenarioService) TotalProgrammeCost(university, programme string, educationYear int) float64 {
	return s.accessor.ProjectFee(university, programme, educationYear) * ProgrammeDurationYears
}

// earlyConversionScenario converts the full GBP need at startYear's rate and
// models UK interest accrued until enrollment. The max() keeps the reported
// cost from dropping below the naive upfront conversion; the interest benefit
// is reported in the breakdown either way.
func (s *scenarioService) earlyConversionScenario(university, programme string, startYear, educationYear int, totalGBP float64) models.SavingsScenario {
	conversionRate := s.accessor.GetFxRate(startYear)
	initialINR := totalGBP * conversionRate

	years := educationYear - startYear
	var avgRate float64
	if years > 0 {
		var sum float64
		for y := startYear; y < educationYear; y++ {
			sum += s.accessor.GetInterestRate(y)
		}
		avgRate = sum / float64(years)
	}
	earningsGBP := totalGBP * avgRate * float64(years)

	totalCostINR := math.Max(initialINR, (totalGBP-earningsGBP)*conversionRate)

	educationRate := s.accessor.GetFxRate(educationYear)
	paygCost := totalGBP * educationRate

	return models.SavingsScenario{
		StrategyName:      fmt.Sprintf("Early Conversion in %d", startYear),
		TotalCostINR:      totalCostINR,
		TotalCostGBP:      totalGBP,
		SavingsVsPAYGINR:  paygCost - totalCostINR,
		SavingsPercentage: savingsPercent(paygCost, totalCostINR),
		ExchangeRateUsed:  conversionRate,
		Conversion: &models.ConversionDetails{
			ConversionYear: startYear,
			ConversionRate: conversionRate,
			EducationYear:  educationYear,
			EducationRate:  educationRate,
			YearsInvested:  years,
			InitialINRCost: initialINR,
			UKEarnings: models.UKEarnings{
				TotalInterestGBP: earningsGBP,
				AvgInterestRate:  avgRate,
				Years:            years,
			},
			PaygComparison: models.PAYGComparison{PaygCostINR: paygCost, PaygRate: educationRate},
		},
	}
}

// staggeredConversionScenario splits the GBP need into equal annual tranches
// converted at each year's rate from conversionYear up to, excluding, the
// education year. A non-positive span degenerates to a single conversion.
func (s *scenarioService) staggeredConversionScenario(university, programme string, conversionYear, educationYear int, totalGBP float64) models.SavingsScenario {
	span := educationYear - conversionYear
	if span <= 0 {
		return s.earlyConversionScenario(university, programme, conversionYear, educationYear, totalGBP)
	}

	trancheGBP := totalGBP / float64(span)
	tranches := make([]models.TrancheConversion, 0, span)
	var totalCostINR float64
	for year := conversionYear; year < educationYear; year++ {
		rate := s.accessor.GetFxRate(year)
		cost := trancheGBP * rate
		totalCostINR += cost
		tranches = append(tranches, models.TrancheConversion{
			Year:      year,
			GBPAmount: trancheGBP,
			FxRate:    rate,
			INRCost:   cost,
		})
	}

	educationRate := s.accessor.GetFxRate(educationYear)
	paygCost := totalGBP * educationRate

	return models.SavingsScenario{
		StrategyName:      fmt.Sprintf("Staggered from %d", conversionYear),
		TotalCostINR:      totalCostINR,
		TotalCostGBP:      totalGBP,
		SavingsVsPAYGINR:  paygCost - totalCostINR,
		SavingsPercentage: savingsPercent(paygCost, totalCostINR),
		ExchangeRateUsed:  totalCostINR / totalGBP, // blended rate across tranches
		Staggered: &models.StaggeredDetails{
			Tranches:          tranches,
			YearsOfConversion: span,
			PaygComparison:    models.PAYGComparison{PaygCostINR: paygCost, PaygRate: educationRate},
		},
	}
}

// paygScenario is the baseline: the full amount converted only when tuition
// falls due. Savings are zero by construction.
func (s *scenarioService) paygScenario(university, programme string, educationYear int, totalGBP float64) models.SavingsScenario {
	educationRate := s.accessor.GetFxRate(educationYear)
	cost := totalGBP * educationRate

	return models.SavingsScenario{
		StrategyName:      PaygBaselineName,
		TotalCostINR:      cost,
		TotalCostGBP:      totalGBP,
		SavingsVsPAYGINR:  0,
		SavingsPercentage: 0,
		ExchangeRateUsed:  educationRate,
		PAYG: &models.PAYGDetails{
			EducationYear: educationYear,
			EducationRate: educationRate,
			GBPAmount:     totalGBP,
			INRCost:       cost,
		},
	}
}

// CompareAllStrategies evaluates one early conversion per candidate start
// year, one staggered conversion when the span allows it, and the baseline,
// sorted by descending savings. Ties keep generation order: early scenarios
// by ascending start year, then staggered, then the baseline.
func (s *scenarioService) CompareAllStrategies(university, programme string, conversionYear, educationYear int) ([]models.SavingsScenario, error) {
	if err := s.validateCourse(university, programme); err != nil {
		return nil, err
	}
	if err := validateYears(conversionYear, educationYear); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("compare:%s:%s:%d:%d", university, programme, conversionYear, educationYear)
	if cached, found := s.resultCache.Get(cacheKey); found {
		return cached.([]models.SavingsScenario), nil
	}

	totalGBP := s.TotalProgrammeCost(university, programme, educationYear)

	var scenarios []models.SavingsScenario
	for start := conversionYear; start < educationYear; start++ {
		scenarios = append(scenarios, s.earlyConversionScenario(university, programme, start, educationYear, totalGBP))
	}
	if educationYear-conversionYear > 1 {
		scenarios = append(scenarios, s.staggeredConversionScenario(university, programme, conversionYear, educationYear, totalGBP))
	}
	scenarios = append(scenarios, s.paygScenario(university, programme, educationYear, totalGBP))

	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].SavingsVsPAYGINR > scenarios[j].SavingsVsPAYGINR
	})

	s.resultCache.Set(cacheKey, scenarios, cache.DefaultExpiration)
	logger.L.Info("Strategy comparison computed",
		"university", university, "programme", programme,
		"conversionYear", conversionYear, "educationYear", educationYear,
		"scenarios", len(scenarios))
	return scenarios, nil
}

// roiScenario grows the initial amount in the asset between the September
// anchors of the conversion and education years, then measures the pot
// against the pay-as-you-go tuition cost.
func (s *scenarioService) roiScenario(asset models.AssetSymbol, university, programme string, conversionYear, educationYear int, amountINR float64) (models.SavingsScenario, error) {
	paygGBP := s.TotalProgrammeCost(university, programme, educationYear)
	paygRate := s.accessor.GetFxRate(educationYear)
	paygCost := paygGBP * paygRate

	start := utils.SeptemberOf(conversionYear)
	end := utils.SeptemberOf(educationYear)

	var result models.GrowthResult
	var finalPotINR float64
	var err error
	if asset == models.AssetFtseGBP {
		// GBP asset: convert upfront at the conversion-year rate, grow in
		// GBP, repatriate at the education-year rate.
		conversionRate := s.accessor.GetFxRate(conversionYear)
		result, err = s.growth.Grow(asset, amountINR/conversionRate, start, end)
		if err == nil {
			finalPotINR = result.FinalValueNative * paygRate
		}
	} else {
		result, err = s.growth.Grow(asset, amountINR, start, end)
		finalPotINR = result.FinalValueNative
	}
	if err != nil {
		return models.SavingsScenario{}, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, asset.DisplayName(), err)
	}

	effectiveCost := math.Max(0, paygCost-finalPotINR)
	savings := paygCost - effectiveCost

	scenario := models.SavingsScenario{
		StrategyName:      asset.DisplayName(),
		TotalCostINR:      effectiveCost,
		TotalCostGBP:      effectiveCost / paygRate,
		SavingsVsPAYGINR:  savings,
		SavingsPercentage: savingsPercent(paygCost, effectiveCost),
		ExchangeRateUsed:  paygRate,
		Investment: &models.InvestmentDetails{
			AssetType:        asset,
			ConversionYear:   conversionYear,
			EducationYear:    educationYear,
			InitialAmountINR: amountINR,
			FinalPotINR:      finalPotINR,
			CAGR:             result.CAGR,
			TotalReturn:      result.TotalReturn,
			Volatility:       result.Volatility,
			MaxDrawdown:      result.MaxDrawdown,
			EffectiveCost: models.EffectiveCostBreakdown{
				InvestmentProceeds: finalPotINR,
				TotalEducationCost: paygCost,
				SurplusIfAny:       math.Max(0, finalPotINR-paygCost),
			},
			PaygComparison:    models.PAYGComparison{PaygCostINR: paygCost, PaygRate: paygRate},
			GrowthDataQuality: result.DataQuality,
		},
		ValidationWarnings: plausibilityWarnings(asset, result, amountINR, finalPotINR, educationYear-conversionYear),
	}
	return scenario, nil
}

// plausibilityWarnings annotates implausible-looking growth results. Always
// advisory; the numbers are reported as computed, never clamped.
func plausibilityWarnings(asset models.AssetSymbol, result models.GrowthResult, amountINR, finalPotINR float64, yearsInvested int) []string {
	var warnings []string
	switch {
	case result.CAGR > extremeCAGRThreshold:
		warnings = append(warnings, fmt.Sprintf(
			"%s shows an extreme annualized growth of %.1f%%; historical outliers rarely persist",
			asset.DisplayName(), result.CAGR*100))
	case result.CAGR > optimisticCAGRThreshold:
		warnings = append(warnings, fmt.Sprintf(
			"%s shows an optimistic annualized growth of %.1f%%; future projections may not sustain this",
			asset.DisplayName(), result.CAGR*100))
	}
	if yearsInvested > 0 && result.TotalReturn > float64(yearsInvested)*perYearReturnThreshold {
		warnings = append(warnings, fmt.Sprintf(
			"total return of %.1f%% exceeds %.0f%% per year invested; verify the underlying data window",
			result.TotalReturn*100, perYearReturnThreshold*100))
	}
	if amountINR > 0 && finalPotINR/amountINR > potMultipleThreshold {
		warnings = append(warnings, fmt.Sprintf(
			"investment multiplies %.1fx over %d years; results this strong are unusual",
			finalPotINR/amountINR, yearsInvested))
	}
	return warnings
}

// CalculateROIScenarios grows the amount in each requested asset and ranks
// the outcomes against the pay-as-you-go cost. Missing price data for any
// requested asset fails the whole request.
func (s *scenarioService) CalculateROIScenarios(req ROIRequest) ([]models.SavingsScenario, error) {
	if err := s.validateROIRequest(&req); err != nil {
		return nil, err
	}

	assets := req.AssetTypes
	if len(assets) == 0 {
		assets = DefaultROIAssets
	}

	scenarios := make([]models.SavingsScenario, 0, len(assets))
	for _, asset := range assets {
		scenario, err := s.roiScenario(asset, req.University, req.Programme, req.ConversionYear, req.EducationYear, req.AmountINR)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}

	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].SavingsVsPAYGINR > scenarios[j].SavingsVsPAYGINR
	})
	return scenarios, nil
}

// ProjectionDetails builds per-year fee and FX series spanning the earliest
// published fee year through the education year, marking which points are
// observations and which are projections.
func (s *scenarioService) ProjectionDetails(university, programme string, educationYear int) (models.ProjectionDetails, error) {
	if err := s.validateCourse(university, programme); err != nil {
		return models.ProjectionDetails{}, err
	}
	if educationYear < MinEducationYear || educationYear > MaxEducationYear {
		return models.ProjectionDetails{}, fmt.Errorf("%w: education year %d outside supported range %d-%d",
			ErrInvalidInput, educationYear, MinEducationYear, MaxEducationYear)
	}

	info := s.accessor.GetCourseInfo(university, programme)

	firstYear := educationYear
	for year := range info.HistoricalFees {
		if year < firstYear {
			firstYear = year
		}
	}

	details := models.ProjectionDetails{
		University:    university,
		Programme:     programme,
		EducationYear: educationYear,
		CAGR:          info.CAGR,
		Transparency:  info.Transparency,
	}
	for year := firstYear; year <= educationYear; year++ {
		if fee, ok := info.HistoricalFees[year]; ok {
			details.Fees = append(details.Fees, models.FeeProjectionPoint{Year: year, FeeGBP: fee, IsActual: true})
		} else {
			details.Fees = append(details.Fees, models.FeeProjectionPoint{
				Year:   year,
				FeeGBP: s.accessor.ProjectFee(university, programme, year),
			})
		}
		rate, observed := s.accessor.ObservedFxRate(year)
		if !observed {
			rate = s.accessor.ProjectFxRate(year)
		}
		details.FxRates = append(details.FxRates, models.FxProjectionPoint{Year: year, Rate: rate, IsObserved: observed})
	}
	return details, nil
}

func validateYears(conversionYear, educationYear int) error {
	if conversionYear < MinConversionYear || conversionYear > MaxConversionYear {
		return fmt.Errorf("%w: conversion year %d outside supported range %d-%d",
			ErrInvalidInput, conversionYear, MinConversionYear, MaxConversionYear)
	}
	if educationYear < MinEducationYear || educationYear > MaxEducationYear {
		return fmt.Errorf("%w: education year %d outside supported range %d-%d",
			ErrInvalidInput, educationYear, MinEducationYear, MaxEducationYear)
	}
	if educationYear <= conversionYear {
		return fmt.Errorf("%w: education year %d must be after conversion year %d",
			ErrInvalidInput, educationYear, conversionYear)
	}
	return nil
}

// validateCourse rejects universities and courses the fee table has never
// seen. Fallback projections exist for courses with thin data, not for
// arbitrary input.
func (s *scenarioService) validateCourse(university, programme string) error {
	if !s.accessor.HasUniversity(university) {
		return fmt.Errorf("%w: unknown university %q", ErrInvalidInput, university)
	}
	if !s.accessor.HasCourse(university, programme) {
		return fmt.Errorf("%w: unknown course %q at %s", ErrInvalidInput, programme, university)
	}
	return nil
}

func (s *scenarioService) validateROIRequest(req *ROIRequest) error {
	if err := s.validateCourse(req.University, req.Programme); err != nil {
		return err
	}
	if err := validateYears(req.ConversionYear, req.EducationYear); err != nil {
		return err
	}
	if req.AmountINR < MinInvestmentINR {
		return fmt.Errorf("%w: amount %s below the minimum of %s",
			ErrInvalidInput, utils.FormatINR(req.AmountINR), utils.FormatINR(MinInvestmentINR))
	}
	if req.AmountINR > MaxInvestmentINR {
		return fmt.Errorf("%w: amount %s above the maximum of %s",
			ErrInvalidInput, utils.FormatINR(req.AmountINR), utils.FormatINR(MaxInvestmentINR))
	}
	for _, asset := range req.AssetTypes {
		if !knownAsset(asset) {
			return fmt.Errorf("%w: unknown asset type %q", ErrInvalidInput, asset)
		}
	}
	return nil
}

func knownAsset(asset models.AssetSymbol) bool {
	if asset == models.AssetFixed5Pct {
		return true
	}
	for _, known := range models.PricedAssets {
		if asset == known {
			return true
		}
	}
	return false
}

func savingsPercent(paygCost, cost float64) float64 {
	if paygCost <= 0 {
		return 0
	}
	return utils.RoundFloat((paygCost-cost)/paygCost*100, 2)
}
