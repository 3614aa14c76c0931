// backend/src/parsers/fees.go
package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/username/eduplan/backend/src/logger"
	"github.com/username/eduplan/backend/src/models"
)

// Fee table column order.
const (
	feeColUniversity = iota
	feeColProgramme
	feeColAcademicYear
	feeColFeeStatus
	feeColFeeGBP
	feeColDegreeLevel
	feeColCount
)

// FeeParser reads the published tuition fee table. Only overseas rows are
// kept; the GUI never prices domestic study.
type FeeParser struct{}

func NewFeeParser() *FeeParser {
	return &FeeParser{}
}

func (p *FeeParser) Parse(file io.Reader) ([]models.FeeRecord, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read fee CSV header: %w", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read fee CSV records: %w", err)
	}

	var fees []models.FeeRecord
	for i, record := range records {
		if len(record) < feeColCount {
			logger.L.Warn("Skipping short fee row", "row", i+2, "fields", len(record))
			continue
		}

		status := models.FeeStatus(strings.ToLower(strings.TrimSpace(record[feeColFeeStatus])))
		if status != models.FeeStatusOverseas {
			continue
		}

		year, err := parseAcademicYear(record[feeColAcademicYear])
		if err != nil {
			logger.L.Warn("Skipping fee row with invalid academic year", "row", i+2, "value", record[feeColAcademicYear], "error", err)
			continue
		}

		fee, err := strconv.ParseFloat(strings.TrimSpace(record[feeColFeeGBP]), 64)
		if err != nil || fee < 0 {
			logger.L.Warn("Skipping fee row with invalid fee amount", "row", i+2, "value", record[feeColFeeGBP])
			continue
		}

		fees = append(fees, models.FeeRecord{
			University:   strings.TrimSpace(record[feeColUniversity]),
			Programme:    strings.TrimSpace(record[feeColProgramme]),
			AcademicYear: year,
			FeeStatus:    status,
			FeeGBP:       fee,
			DegreeLevel:  strings.TrimSpace(record[feeColDegreeLevel]),
		})
	}

	if len(fees) == 0 {
		return nil, fmt.Errorf("fee CSV contained no usable overseas records")
	}
	return fees, nil
}

// parseAcademicYear derives the numeric start year from a "2024/25" style
// academic year label.
func parseAcademicYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return 0, fmt.Errorf("academic year %q too short", s)
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0, fmt.Errorf("academic year %q: %w", s, err)
	}
	return year, nil
}
