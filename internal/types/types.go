package types

import "time"

// PriceBar is one daily closing-price observation.
type PriceBar struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// StatementTable maps a financial-statement line-item label to its reported
// values, one per fiscal period, most-recent period first. Providers are
// inconsistent about label naming, so consumers probe alternatives in a fixed
// priority order (see fundamentals.FirstPresent).
type StatementTable map[string][]float64

// RecommendationRow is one period of an analyst recommendation-trend table.
// A category the provider omitted stays zero.
type RecommendationRow struct {
	Period     string `json:"period"` // "0m" = current month
	StrongBuy  int    `json:"strongBuy"`
	Buy        int    `json:"buy"`
	Hold       int    `json:"hold"`
	Sell       int    `json:"sell"`
	StrongSell int    `json:"strongSell"`
}

// ESGScores holds provider ESG sub-scores. Nil fields were not reported.
type ESGScores struct {
	Total       *float64 `json:"total_esg,omitempty"`
	Environment *float64 `json:"environment_score,omitempty"`
	Social      *float64 `json:"social_score,omitempty"`
	Governance  *float64 `json:"governance_score,omitempty"`
	Percentile  *float64 `json:"percentile,omitempty"`
}

// Snapshot is the full raw bag of per-ticker data a provider could fetch.
// Any field may be nil/empty; downstream derivation treats missing data as
// undefined, never as an error.
type Snapshot struct {
	Symbol string `json:"symbol"`

	// Spot / valuation
	CurrentPrice       *float64 `json:"current_price,omitempty"`
	RegularMarketPrice *float64 `json:"regular_market_price,omitempty"`
	TrailingPE         *float64 `json:"trailing_pe,omitempty"`
	ForwardPE          *float64 `json:"forward_pe,omitempty"`
	MarketCap          *float64 `json:"market_cap,omitempty"`
	DividendYield      *float64 `json:"dividend_yield,omitempty"`

	// Provider-reported growth (statement-derived values fill gaps)
	EarningsGrowth          *float64 `json:"earnings_growth,omitempty"`
	RevenueGrowth           *float64 `json:"revenue_growth,omitempty"`
	EarningsQuarterlyGrowth *float64 `json:"earnings_quarterly_growth,omitempty"`
	RevenueQuarterlyGrowth  *float64 `json:"revenue_quarterly_growth,omitempty"`

	// Analyst price targets
	TargetMeanPrice *float64 `json:"target_mean_price,omitempty"`
	TargetHighPrice *float64 `json:"target_high_price,omitempty"`
	TargetLowPrice  *float64 `json:"target_low_price,omitempty"`

	// Financial statements
	IncomeAnnual    StatementTable `json:"income_annual,omitempty"`
	IncomeQuarterly StatementTable `json:"income_quarterly,omitempty"`
	BalanceAnnual   StatementTable `json:"balance_annual,omitempty"`
	CashflowAnnual  StatementTable `json:"cashflow_annual,omitempty"`

	// Analyst recommendation trend, most-recent period first
	Recommendations []RecommendationRow `json:"recommendations,omitempty"`

	ESG *ESGScores `json:"esg,omitempty"`

	// Daily closing prices, chronologically ascending
	History []PriceBar `json:"history,omitempty"`
}

// Closes returns the closing-price series in chronological order.
func (s *Snapshot) Closes() []float64 {
	out := make([]float64, len(s.History))
	for i, b := range s.History {
		out[i] = b.Close
	}
	return out
}

// Price returns the spot price, preferring the live quote over the regular
// market price the way the provider reports them.
func (s *Snapshot) Price() *float64 {
	if s.CurrentPrice != nil {
		return s.CurrentPrice
	}
	return s.RegularMarketPrice
}

// PE returns trailing PE, falling back to forward PE.
func (s *Snapshot) PE() *float64 {
	if s.TrailingPE != nil {
		return s.TrailingPE
	}
	return s.ForwardPE
}

// ManualESG is one row of the manually curated ESG annotation table.
type ManualESG struct {
	Ticker     string `json:"ticker"`
	Theme      string `json:"esg_theme"`
	Score      string `json:"manual_esg_score"`
	Confidence string `json:"confidence_level"`
	Criteria   string `json:"assessment_criteria"`
	ReviewDate string `json:"review_date"`
	Notes      string `json:"analyst_notes"`
}

// Row is one fully derived, display-formatted output row. All fields hold
// presentation values: monetary metrics in billions with a "B" suffix,
// percentages with a trailing "%", and the literal "N/A" for anything
// undefined. Error rows carry only Ticker, the "Error" price marker and a
// truncated ErrorMessage; every other column stays empty.
type Row struct {
	Ticker       string `json:"ticker"`
	CurrentPrice string `json:"current_price"`

	// Valuation
	PERatio       string `json:"pe_ratio"`
	MarketCap     string `json:"market_cap"`
	DividendYield string `json:"dividend_yield"`

	// Financial performance
	GrossProfit     string `json:"gross_profit"`
	OperatingIncome string `json:"operating_income"`
	NetIncome       string `json:"net_income"`

	// Balance sheet
	TotalCash    string `json:"total_cash"`
	TotalDebt    string `json:"total_debt"`
	DebtToEquity string `json:"debt_to_equity"`

	// Cash flow
	FreeCashFlow      string `json:"free_cash_flow"`
	OperatingCashFlow string `json:"operating_cash_flow"`

	// Growth
	EarningsGrowthYoY string `json:"earnings_growth_yoy"`
	RevenueGrowthYoY  string `json:"revenue_growth_yoy"`
	EarningsGrowthQoQ string `json:"earnings_growth_qoq"`
	RevenueGrowthQoQ  string `json:"revenue_growth_qoq"`

	// Technicals
	RSI14      string `json:"rsi_14"`
	SMA20      string `json:"sma_20"`
	SMA50      string `json:"sma_50"`
	SMA200     string `json:"sma_200"`
	MACD       string `json:"macd"`
	SignalLine string `json:"signal_line"`

	// Analyst estimates
	StrongBuy     string `json:"strong_buy"`
	Buy           string `json:"buy"`
	Hold          string `json:"hold"`
	Sell          string `json:"sell"`
	StrongSell    string `json:"strong_sell"`
	TotalAnalysts string `json:"total_analysts"`
	TargetMean    string `json:"target_mean"`
	TargetHigh    string `json:"target_high"`
	TargetLow     string `json:"target_low"`
	UpsidePct     string `json:"upside_pct"`
	UpsideView    string `json:"upside_view"`

	// Provider ESG
	ESGTotal       string `json:"esg_total"`
	ESGEnvironment string `json:"esg_environment"`
	ESGSocial      string `json:"esg_social"`
	ESGGovernance  string `json:"esg_governance"`
	ESGPercentile  string `json:"esg_percentile"`

	// Manual ESG (left-joined; empty when no match)
	ESGTheme       string `json:"esg_theme,omitempty"`
	ManualESGScore string `json:"manual_esg_score,omitempty"`
	Confidence     string `json:"confidence_level,omitempty"`
	Criteria       string `json:"assessment_criteria,omitempty"`
	ReviewDate     string `json:"review_date,omitempty"`
	AnalystNotes   string `json:"analyst_notes,omitempty"`

	// Categorical presentation columns
	UpsideBucket string `json:"upside_bucket,omitempty"`
	ESGCategory  string `json:"esg_category,omitempty"`
	RSIStatus    string `json:"rsi_status,omitempty"`

	ErrorMessage string `json:"error_message,omitempty"`
}

// IsError reports whether this row is a per-ticker failure marker.
func (r *Row) IsError() bool { return r.CurrentPrice == "Error" }
