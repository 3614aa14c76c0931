// backend/src/parsers/assets.go
package parsers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/username/eduplan/backend/src/logger"
	"github.com/username/eduplan/backend/src/models"
)

// AssetPriceParser reads one asset's monthly price series (columns: month,
// price_close).
type AssetPriceParser struct{}

func NewAssetPriceParser() *AssetPriceParser {
	return &AssetPriceParser{}
}

func (p *AssetPriceParser) Parse(file io.Reader, asset models.AssetSymbol) ([]models.AssetPricePoint, error) {
	rows, err := readSeriesRows(file, string(asset))
	if err != nil {
		return nil, err
	}

	var points []models.AssetPricePoint
	for i, row := range rows {
		month, price, ok := parseSeriesRow(row, i, string(asset))
		if !ok {
			continue
		}
		points = append(points, models.AssetPricePoint{Month: month, PriceClose: price, Asset: asset})
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("price CSV for %s contained no usable records", asset)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month.Before(points[j].Month) })
	return points, nil
}

// AssetPriceLoader loads per-asset monthly CSV files from a market data
// directory laid out as <dir>/<symbol>.csv. A missing or unreadable file is
// an error, never a synthetic fallback: investment claims need real data.
type AssetPriceLoader struct {
	dataDir string
	parser  *AssetPriceParser
}

func NewAssetPriceLoader(dataDir string) *AssetPriceLoader {
	return &AssetPriceLoader{
		dataDir: dataDir,
		parser:  NewAssetPriceParser(),
	}
}

// LoadMonthly reads the full monthly series for one asset.
func (l *AssetPriceLoader) LoadMonthly(asset models.AssetSymbol) ([]models.AssetPricePoint, error) {
	known := false
	for _, a := range models.PricedAssets {
		if a == asset {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("unknown asset %q: no price series, available: %v", asset, models.PricedAssets)
	}

	path := filepath.Join(l.dataDir, string(asset)+".csv")
	file, err := os.Open(path)
	if err != nil {
		logger.L.Error("Asset price file unavailable", "asset", asset, "path", path, "error", err)
		return nil, fmt.Errorf("asset price data unavailable for %s at %q: %w", asset, path, err)
	}
	defer file.Close()

	points, err := l.parser.Parse(file, asset)
	if err != nil {
		return nil, fmt.Errorf("parsing asset price data for %s: %w", asset, err)
	}
	logger.L.Info("Loaded asset price series", "asset", asset, "points", len(points))
	return points, nil
}
