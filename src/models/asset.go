package models

import "time"

// AssetSymbol identifies an investable asset or instrument.
type AssetSymbol string

const (
	AssetGoldINR   AssetSymbol = "GOLD_INR"
	AssetNiftyINR  AssetSymbol = "NIFTY_INR"
	AssetFtseGBP   AssetSymbol = "FTSE_GBP"
	AssetFixed5Pct AssetSymbol = "FIXED_5PCT" // synthetic fixed-deposit instrument, no price series
)

// PricedAssets lists the symbols backed by a monthly price series.
var PricedAssets = []AssetSymbol{AssetGoldINR, AssetNiftyINR, AssetFtseGBP}

// DisplayName returns the parent-facing label for an asset.
func (a AssetSymbol) DisplayName() string {
	switch a {
	case AssetGoldINR:
		return "Gold (INR)"
	case AssetNiftyINR:
		return "NIFTY 50 (INR)"
	case AssetFtseGBP:
		return "FTSE 100 (GBP)"
	case AssetFixed5Pct:
		return "Fixed Deposit 5%"
	default:
		return string(a)
	}
}

// Currency returns the native currency the asset grows in.
func (a AssetSymbol) Currency() string {
	if a == AssetFtseGBP {
		return "GBP"
	}
	return "INR"
}

// AssetPricePoint is one monthly closing price for an asset.
type AssetPricePoint struct {
	Month      time.Time   `json:"month"`
	PriceClose float64     `json:"price_close"`
	Asset      AssetSymbol `json:"asset"`
}
