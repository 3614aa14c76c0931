package models

// SavingsScenario is the result of evaluating one strategy against the
// pay-as-you-go baseline. Exactly one of the detail pointers is set,
// matching the strategy kind; consumers switch on whichever is non-nil.
// Scenario lists are always sorted by descending SavingsVsPAYGINR; ties keep
// generation order (stable sort).
type SavingsScenario struct {
	StrategyName      string  `json:"strategy_name"`
	TotalCostINR      float64 `json:"total_cost_inr"`
	TotalCostGBP      float64 `json:"total_cost_gbp"`
	SavingsVsPAYGINR  float64 `json:"savings_vs_payg_inr"`
	SavingsPercentage float64 `json:"savings_percentage"`
	ExchangeRateUsed  float64 `json:"exchange_rate_used"`

	Conversion *ConversionDetails `json:"conversion,omitempty"`
	Staggered  *StaggeredDetails  `json:"staggered,omitempty"`
	PAYG       *PAYGDetails       `json:"payg,omitempty"`
	Investment *InvestmentDetails `json:"investment,omitempty"`

	// Advisory annotations on implausible-looking results. Never fatal.
	ValidationWarnings []string `json:"validation_warnings,omitempty"`
}

// PAYGComparison restates the baseline the savings were measured against.
type PAYGComparison struct {
	PaygCostINR float64 `json:"payg_cost_inr"`
	PaygRate    float64 `json:"payg_rate"`
}

// UKEarnings describes interest accrued on GBP held between conversion and
// enrollment.
type UKEarnings struct {
	TotalInterestGBP float64 `json:"total_interest_gbp"`
	AvgInterestRate  float64 `json:"avg_interest_rate"`
	Years            int     `json:"years"`
}

// ConversionDetails is attached to a single-year early conversion scenario.
type ConversionDetails struct {
	ConversionYear int            `json:"conversion_year"`
	ConversionRate float64        `json:"conversion_rate"`
	EducationYear  int            `json:"education_year"`
	EducationRate  float64        `json:"education_rate"`
	YearsInvested  int            `json:"years_invested"`
	InitialINRCost float64        `json:"initial_inr_cost"`
	UKEarnings     UKEarnings     `json:"uk_earnings"`
	PaygComparison PAYGComparison `json:"payg_comparison"`
}

// TrancheConversion is one annual tranche of a staggered conversion.
type TrancheConversion struct {
	Year      int     `json:"year"`
	GBPAmount float64 `json:"gbp_amount"`
	FxRate    float64 `json:"fx_rate"`
	INRCost   float64 `json:"inr_cost"`
}

// StaggeredDetails is attached to a staggered conversion scenario.
type StaggeredDetails struct {
	Tranches          []TrancheConversion `json:"tranches"`
	YearsOfConversion int                 `json:"years_of_conversion"`
	PaygComparison    PAYGComparison      `json:"payg_comparison"`
}

// PAYGDetails is attached to the baseline scenario.
type PAYGDetails struct {
	EducationYear int     `json:"education_year"`
	EducationRate float64 `json:"education_rate"`
	GBPAmount     float64 `json:"gbp_amount"`
	INRCost       float64 `json:"inr_cost"`
}

// EffectiveCostBreakdown shows how an investment pot offsets tuition.
type EffectiveCostBreakdown struct {
	InvestmentProceeds float64 `json:"investment_proceeds"`
	TotalEducationCost float64 `json:"total_education_cost"`
	SurplusIfAny       float64 `json:"surplus_if_any"`
}

// InvestmentDetails is attached to an ROI scenario.
type InvestmentDetails struct {
	AssetType         AssetSymbol            `json:"asset_type"`
	ConversionYear    int                    `json:"conversion_year"`
	EducationYear     int                    `json:"education_year"`
	InitialAmountINR  float64                `json:"initial_amount_inr"`
	FinalPotINR       float64                `json:"final_pot_inr"`
	CAGR              float64                `json:"cagr"`
	TotalReturn       float64                `json:"total_return"`
	Volatility        float64                `json:"volatility"`
	MaxDrawdown       float64                `json:"max_drawdown"`
	EffectiveCost     EffectiveCostBreakdown `json:"effective_cost_breakdown"`
	PaygComparison    PAYGComparison         `json:"payg_comparison"`
	GrowthDataQuality GrowthDataQuality      `json:"growth_data_quality"`
}
