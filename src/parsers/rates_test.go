package parsers

import (
	"strings"
	"testing"
	"time"
)

func TestFxRateParserParse(t *testing.T) {
	csvData := `month,rate
2024-08-01,110.52
2024-09-01,111.27
not-a-date,100.0
2024-10-01,
`
	points, err := NewFxRateParser().Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 usable points, got %d", len(points))
	}
	want := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	if !points[1].Month.Equal(want) {
		t.Errorf("second point month = %v, want %v", points[1].Month, want)
	}
	if points[1].Rate != 111.27 {
		t.Errorf("second point rate = %v, want 111.27", points[1].Rate)
	}
}

func TestInterestRateParserParse(t *testing.T) {
	csvData := `month,annual_rate
2024-01,0.0525
2024-02,0.0525
2024-03,0.0500
`
	points, err := NewInterestRateParser().Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].Month.Month() != time.January || points[0].Rate != 0.0525 {
		t.Errorf("unexpected first point: %+v", points[0])
	}
}

func TestSeriesParsersRejectEmptyData(t *testing.T) {
	if _, err := NewFxRateParser().Parse(strings.NewReader("month,rate\n")); err == nil {
		t.Error("FX parser: expected error for header-only file")
	}
	if _, err := NewInterestRateParser().Parse(strings.NewReader("")); err == nil {
		t.Error("interest parser: expected error for empty file")
	}
}
