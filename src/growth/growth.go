// backend/src/growth/growth.go
package growth

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/username/eduplan/backend/src/models"
	"github.com/username/eduplan/backend/src/parsers"
	"github.com/username/eduplan/backend/src/utils"
)

const (
	// Fixed deposit annual rate for the synthetic FIXED_5PCT instrument.
	FixedDepositAnnualRate = 0.05

	// Point-count thresholds for grading a price series.
	excellentPoints = 36
	goodPoints      = 24
	fairPoints      = 12

	// A gap of more than this many months inside a series, or a series
	// ending more than staleMonths before the requested end, downgrades
	// the quality grade by one step.
	maxGapMonths = 3
	staleMonths  = 6
)

// Engine grows lump sums against historical price series or a fixed rate.
// Price series are loaded lazily, once per asset, and shared across calls.
type Engine struct {
	loader *parsers.AssetPriceLoader

	mu     sync.Mutex
	series map[models.AssetSymbol][]models.AssetPricePoint
}

func NewEngine(loader *parsers.AssetPriceLoader) *Engine {
	return &Engine{
		loader: loader,
		series: make(map[models.AssetSymbol][]models.AssetPricePoint),
	}
}

// Grow dispatches to the fixed-rate path for the synthetic deposit and to
// historical prices for everything else. Missing price data is an error,
// never silently substituted.
func (e *Engine) Grow(asset models.AssetSymbol, amount float64, start, end time.Time) (models.GrowthResult, error) {
	if asset == models.AssetFixed5Pct {
		return GrowFixedRate(amount, FixedDepositAnnualRate, start, end), nil
	}
	prices, err := e.pricesFor(asset)
	if err != nil {
		return models.GrowthResult{}, err
	}
	return GrowLumpSum(asset, prices, amount, start, end)
}

func (e *Engine) pricesFor(asset models.AssetSymbol) ([]models.AssetPricePoint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if prices, ok := e.series[asset]; ok {
		return prices, nil
	}
	prices, err := e.loader.LoadMonthly(asset)
	if err != nil {
		return nil, err
	}
	e.series[asset] = prices
	return prices, nil
}

// GrowLumpSum invests the full amount at the first available price inside
// [start, end] and tracks relative performance month by month. Returns an
// error when the series has no points in the window; callers surface that
// instead of inventing numbers.
func GrowLumpSum(asset models.AssetSymbol, prices []models.AssetPricePoint, amount float64, start, end time.Time) (models.GrowthResult, error) {
	if amount <= 0 {
		return models.GrowthResult{}, fmt.Errorf("investment amount must be positive, got %.2f", amount)
	}

	window := make([]models.AssetPricePoint, 0, len(prices))
	for _, p := range prices {
		if !p.Month.Before(start) && !p.Month.After(end) {
			window = append(window, p)
		}
	}
	sort.Slice(window, func(i, j int) bool { return window[i].Month.Before(window[j].Month) })
	if len(window) == 0 {
		return models.GrowthResult{}, fmt.Errorf("no price data for %s between %s and %s",
			asset, start.Format(utils.MonthFormat), end.Format(utils.MonthFormat))
	}

	basePrice := window[0].PriceClose
	if basePrice <= 0 {
		return models.GrowthResult{}, fmt.Errorf("non-positive base price %.4f for %s at %s",
			basePrice, asset, window[0].Month.Format(utils.MonthFormat))
	}

	curve := make([]models.CurvePoint, len(window))
	maxVal, minVal := math.Inf(-1), math.Inf(1)
	for i, p := range window {
		v := amount * p.PriceClose / basePrice
		curve[i] = models.CurvePoint{Month: p.Month, Value: v}
		if v > maxVal {
			maxVal = v
		}
		if v < minVal {
			minVal = v
		}
	}

	final := curve[len(curve)-1].Value
	years := utils.YearsBetween(window[0].Month, window[len(window)-1].Month)

	return models.GrowthResult{
		Asset:            asset,
		StartMonth:       window[0].Month,
		EndMonth:         window[len(window)-1].Month,
		Curve:            curve,
		InitialValue:     amount,
		FinalValueNative: final,
		CAGR:             utils.ComputeCAGR(amount, final, years),
		TotalReturn:      final/amount - 1,
		Volatility:       annualizedVolatility(curve),
		MaxDrawdown:      maxDrawdown(curve),
		Currency:         asset.Currency(),
		MaxValue:         maxVal,
		MinValue:         minVal,
		DataQuality:      assessSeries(window, years, end),
	}, nil
}

// GrowFixedRate compounds monthly at the equivalent of the given annual
// rate. The first curve point holds the initial amount, so a span of
// exactly N years ends at amount*(1+rate)^N. Deterministic: volatility and
// drawdown are zero by construction.
func GrowFixedRate(amount, annualRate float64, start, end time.Time) models.GrowthResult {
	monthlyRate := math.Pow(1+annualRate, 1.0/12.0) - 1

	var curve []models.CurvePoint
	value := amount
	for m := utils.TruncateToMonth(start); !m.After(end); m = m.AddDate(0, 1, 0) {
		curve = append(curve, models.CurvePoint{Month: m, Value: value})
		value *= 1 + monthlyRate
	}
	if len(curve) == 0 {
		curve = []models.CurvePoint{{Month: utils.TruncateToMonth(start), Value: amount}}
	}

	final := curve[len(curve)-1].Value
	years := utils.YearsBetween(curve[0].Month, curve[len(curve)-1].Month)

	return models.GrowthResult{
		Asset:            models.AssetFixed5Pct,
		StartMonth:       curve[0].Month,
		EndMonth:         curve[len(curve)-1].Month,
		Curve:            curve,
		InitialValue:     amount,
		FinalValueNative: final,
		CAGR:             utils.ComputeCAGR(amount, final, years),
		TotalReturn:      final/amount - 1,
		Volatility:       0,
		MaxDrawdown:      0,
		Currency:         models.AssetFixed5Pct.Currency(),
		MaxValue:         final,
		MinValue:         amount,
		DataQuality: models.GrowthDataQuality{
			DataPoints:    len(curve),
			YearsOfData:   years,
			Quality:       models.GrowthQualityExcellent,
			Deterministic: true,
		},
	}
}

// annualizedVolatility is the sample standard deviation of month-over-month
// returns, scaled by sqrt(12). Needs at least three curve points to yield a
// meaningful sample; returns 0 otherwise.
func annualizedVolatility(curve []models.CurvePoint) float64 {
	if len(curve) < 3 {
		return 0
	}
	returns := make([]float64, 0, len(curve)-1)
	for i := 1; i < len(curve); i++ {
		prev := curve[i-1].Value
		if prev <= 0 {
			continue
		}
		returns = append(returns, curve[i].Value/prev-1)
	}
	if len(returns) < 2 {
		return 0
	}
	return utils.SampleStdDev(returns) * math.Sqrt(12)
}

// maxDrawdown is the worst peak-to-trough decline over the curve. Always
// <= 0; exactly 0 for a monotonically rising curve.
func maxDrawdown(curve []models.CurvePoint) float64 {
	var worst float64
	runningMax := math.Inf(-1)
	for _, p := range curve {
		if p.Value > runningMax {
			runningMax = p.Value
		}
		if runningMax > 0 {
			if dd := p.Value/runningMax - 1; dd < worst {
				worst = dd
			}
		}
	}
	return worst
}

func assessSeries(window []models.AssetPricePoint, years float64, requestedEnd time.Time) models.GrowthDataQuality {
	grade := gradeForPoints(len(window))

	degraded := false
	for i := 1; i < len(window); i++ {
		if monthsApart(window[i-1].Month, window[i].Month) > maxGapMonths {
			degraded = true
			break
		}
	}
	if monthsApart(window[len(window)-1].Month, requestedEnd) > staleMonths {
		degraded = true
	}
	if degraded {
		grade = downgrade(grade)
	}

	return models.GrowthDataQuality{
		DataPoints:  len(window),
		YearsOfData: years,
		Quality:     grade,
	}
}

func gradeForPoints(n int) models.GrowthQuality {
	switch {
	case n >= excellentPoints:
		return models.GrowthQualityExcellent
	case n >= goodPoints:
		return models.GrowthQualityGood
	case n >= fairPoints:
		return models.GrowthQualityFair
	default:
		return models.GrowthQualityPoor
	}
}

func downgrade(q models.GrowthQuality) models.GrowthQuality {
	switch q {
	case models.GrowthQualityExcellent:
		return models.GrowthQualityGood
	case models.GrowthQualityGood:
		return models.GrowthQualityFair
	default:
		return models.GrowthQualityPoor
	}
}

func monthsApart(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if months < 0 {
		return -months
	}
	return months
}
