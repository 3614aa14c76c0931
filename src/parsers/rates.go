// backend/src/parsers/rates.go
package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/username/eduplan/backend/src/logger"
	"github.com/username/eduplan/backend/src/models"
	"github.com/username/eduplan/backend/src/utils"
)

// FxRateParser reads the monthly GBP/INR series (columns: month, rate,
// INR per GBP).
type FxRateParser struct{}

func NewFxRateParser() *FxRateParser {
	return &FxRateParser{}
}

func (p *FxRateParser) Parse(file io.Reader) ([]models.FxRatePoint, error) {
	rows, err := readSeriesRows(file, "FX rate")
	if err != nil {
		return nil, err
	}

	var points []models.FxRatePoint
	for i, row := range rows {
		month, rate, ok := parseSeriesRow(row, i, "FX rate")
		if !ok {
			continue
		}
		points = append(points, models.FxRatePoint{Month: month, Rate: rate})
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("FX rate CSV contained no usable records")
	}
	return points, nil
}

// InterestRateParser reads the monthly Bank of England base rate series
// (columns: month as "YYYY-MM", annual rate as a fraction).
type InterestRateParser struct{}

func NewInterestRateParser() *InterestRateParser {
	return &InterestRateParser{}
}

func (p *InterestRateParser) Parse(file io.Reader) ([]models.InterestRatePoint, error) {
	rows, err := readSeriesRows(file, "interest rate")
	if err != nil {
		return nil, err
	}

	var points []models.InterestRatePoint
	for i, row := range rows {
		month, rate, ok := parseSeriesRow(row, i, "interest rate")
		if !ok {
			continue
		}
		points = append(points, models.InterestRatePoint{Month: month, Rate: rate})
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("interest rate CSV contained no usable records")
	}
	return points, nil
}

func readSeriesRows(file io.Reader, series string) ([][]string, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read %s CSV header: %w", series, err)
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV records: %w", series, err)
	}
	return rows, nil
}

func parseSeriesRow(row []string, idx int, series string) (time.Time, float64, bool) {
	if len(row) < 2 {
		logger.L.Warn("Skipping short series row", "series", series, "row", idx+2, "fields", len(row))
		return time.Time{}, 0, false
	}
	month, err := utils.ParseMonth(strings.TrimSpace(row[0]))
	if err != nil {
		logger.L.Warn("Skipping series row with invalid month", "series", series, "row", idx+2, "value", row[0], "error", err)
		return time.Time{}, 0, false
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		logger.L.Warn("Skipping series row with invalid value", "series", series, "row", idx+2, "value", row[1], "error", err)
		return time.Time{}, 0, false
	}
	return month, rate, true
}
