package parsers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/username/eduplan/backend/src/models"
)

func TestAssetPriceParserSortsByMonth(t *testing.T) {
	csvData := `month,price_close
2024-03-01,66500
2024-01-01,63200
2024-02-01,62100
`
	points, err := NewAssetPriceParser().Parse(strings.NewReader(csvData), models.AssetGoldINR)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Month.Before(points[i-1].Month) {
			t.Fatalf("points not sorted by month: %v before %v", points[i].Month, points[i-1].Month)
		}
	}
	if points[0].PriceClose != 63200 {
		t.Errorf("earliest price = %v, want 63200", points[0].PriceClose)
	}
	if points[0].Asset != models.AssetGoldINR {
		t.Errorf("asset tag = %v, want %v", points[0].Asset, models.AssetGoldINR)
	}
}

func TestAssetPriceLoaderLoadMonthly(t *testing.T) {
	dir := t.TempDir()
	csvData := "month,price_close\n2024-01-01,63200\n2024-02-01,64100\n"
	if err := os.WriteFile(filepath.Join(dir, "GOLD_INR.csv"), []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewAssetPriceLoader(dir)
	points, err := loader.LoadMonthly(models.AssetGoldINR)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
}

func TestAssetPriceLoaderMissingFile(t *testing.T) {
	loader := NewAssetPriceLoader(t.TempDir())
	if _, err := loader.LoadMonthly(models.AssetNiftyINR); err == nil {
		t.Fatal("expected error for missing price file")
	}
}

func TestAssetPriceLoaderUnknownAsset(t *testing.T) {
	loader := NewAssetPriceLoader(t.TempDir())
	if _, err := loader.LoadMonthly(models.AssetFixed5Pct); err == nil {
		t.Fatal("expected error for asset with no price series")
	}
	if _, err := loader.LoadMonthly(models.AssetSymbol("DOGE_INR")); err == nil {
		t.Fatal("expected error for unrecognized asset symbol")
	}
}
