package fundamentals

import (
	"math"
	"testing"

	"esg-stock-screener/internal/types"
)

func nanIndicators() Indicators {
	n := math.NaN()
	return Indicators{RSI: n, SMA20: n, SMA50: n, SMA200: n, MACD: n, Signal: n}
}

func TestBuildRowFullyPopulated(t *testing.T) {
	snap := &types.Snapshot{
		Symbol:        "AAPL",
		CurrentPrice:  f(100),
		TrailingPE:    f(28.5),
		MarketCap:     f(2.5e12),
		DividendYield: f(0.0055),
		IncomeAnnual: types.StatementTable{
			"Total Revenue": {400e9, 380e9},
			"Net Income":    {100e9, 90e9},
			"Gross Profit":  {170e9, 160e9},
			"EBIT":          {120e9, 110e9},
		},
		IncomeQuarterly: types.StatementTable{
			"Total Revenue": {120e9, 100e9},
			"Net Income":    {30e9, 25e9},
		},
		BalanceAnnual: types.StatementTable{
			"Total Debt":          {110e9, 120e9},
			"Stockholders Equity": {55e9, 60e9},
		},
		CashflowAnnual: types.StatementTable{
			"Free Cash Flow":      {95e9},
			"Operating Cash Flow": {115e9},
		},
		Recommendations: []types.RecommendationRow{
			{Period: "0m", StrongBuy: 10, Buy: 20, Hold: 8, Sell: 2, StrongSell: 1},
		},
		TargetMeanPrice: f(120),
		ESG:             &types.ESGScores{Total: f(18.5), Environment: f(2.1)},
	}

	ind := Indicators{RSI: 55.5, SMA20: 101.2, SMA50: 99.8, SMA200: 95.1, MACD: 1.25, Signal: 1.10}
	row := BuildRow(snap, ind)

	checks := map[string]string{
		"CurrentPrice":      row.CurrentPrice,
		"PERatio":           row.PERatio,
		"MarketCap":         row.MarketCap,
		"GrossProfit":       row.GrossProfit,
		"OperatingIncome":   row.OperatingIncome,
		"DebtToEquity":      row.DebtToEquity,
		"RevenueGrowthYoY":  row.RevenueGrowthYoY,
		"EarningsGrowthQoQ": row.EarningsGrowthQoQ,
		"UpsidePct":         row.UpsidePct,
	}
	for name, got := range checks {
		if got == NA || got == "" {
			t.Errorf("%s unexpectedly undefined", name)
		}
	}

	if row.CurrentPrice != "100.00" {
		t.Errorf("CurrentPrice = %q", row.CurrentPrice)
	}
	if row.MarketCap != "2500.00B" {
		t.Errorf("MarketCap = %q", row.MarketCap)
	}
	if row.DividendYield != "0.0055" {
		t.Errorf("DividendYield = %q", row.DividendYield)
	}
	// EBIT serves as the operating-income fallback label
	if row.OperatingIncome != "120.00B" {
		t.Errorf("OperatingIncome = %q", row.OperatingIncome)
	}
	if row.DebtToEquity != "2.00" {
		t.Errorf("DebtToEquity = %q", row.DebtToEquity)
	}
	if row.RevenueGrowthQoQ != "20.00%" {
		t.Errorf("RevenueGrowthQoQ = %q", row.RevenueGrowthQoQ)
	}
	if row.UpsidePct != "20.00%" || row.UpsideView != "High Upside" {
		t.Errorf("upside = %q / %q", row.UpsidePct, row.UpsideView)
	}
	if row.TotalAnalysts != "41" {
		t.Errorf("TotalAnalysts = %q", row.TotalAnalysts)
	}
	if row.RSI14 != "55.50" {
		t.Errorf("RSI14 = %q", row.RSI14)
	}
	if row.ESGTotal != "18.50" {
		t.Errorf("ESGTotal = %q", row.ESGTotal)
	}
	// absent ESG sub-score stays N/A even when the table itself is present
	if row.ESGSocial != NA {
		t.Errorf("ESGSocial = %q", row.ESGSocial)
	}
	if row.IsError() {
		t.Error("populated row flagged as error")
	}
}

func TestBuildRowEmptySnapshot(t *testing.T) {
	row := BuildRow(&types.Snapshot{Symbol: "XYZ"}, nanIndicators())

	for name, got := range map[string]string{
		"CurrentPrice":      row.CurrentPrice,
		"PERatio":           row.PERatio,
		"MarketCap":         row.MarketCap,
		"DividendYield":     row.DividendYield,
		"GrossProfit":       row.GrossProfit,
		"DebtToEquity":      row.DebtToEquity,
		"EarningsGrowthYoY": row.EarningsGrowthYoY,
		"RSI14":             row.RSI14,
		"StrongBuy":         row.StrongBuy,
		"TotalAnalysts":     row.TotalAnalysts,
		"UpsidePct":         row.UpsidePct,
		"ESGTotal":          row.ESGTotal,
	} {
		if got != NA {
			t.Errorf("%s = %q, want %q", name, got, NA)
		}
	}
	if row.UpsideView != NA {
		t.Errorf("UpsideView = %q", row.UpsideView)
	}
	if row.Ticker != "XYZ" {
		t.Errorf("Ticker = %q", row.Ticker)
	}
}

func TestBuildRowProviderGrowthPrecedence(t *testing.T) {
	// provider-reported annual growth wins over the statement-derived value
	snap := &types.Snapshot{
		Symbol:         "MSFT",
		RevenueGrowth:  f(0.12),
		EarningsGrowth: f(0.08),
		IncomeAnnual: types.StatementTable{
			"Total Revenue": {200e9, 100e9}, // would be 100% if derived
			"Net Income":    {60e9, 30e9},
		},
	}
	row := BuildRow(snap, nanIndicators())
	if row.RevenueGrowthYoY != "12.00%" {
		t.Errorf("RevenueGrowthYoY = %q, want provider value", row.RevenueGrowthYoY)
	}
	if row.EarningsGrowthYoY != "8.00%" {
		t.Errorf("EarningsGrowthYoY = %q, want provider value", row.EarningsGrowthYoY)
	}
}

func TestBuildRowQuarterlyGrowthFallback(t *testing.T) {
	// quarterly growth is derived from statements first; the provider field
	// only fills in when the statement table cannot produce a value
	snap := &types.Snapshot{
		Symbol:                  "TSLA",
		EarningsQuarterlyGrowth: f(0.30),
		IncomeQuarterly: types.StatementTable{
			"Net Income": {50e9, 0}, // zero previous period: derivation undefined
		},
	}
	row := BuildRow(snap, nanIndicators())
	if row.EarningsGrowthQoQ != "30.00%" {
		t.Errorf("EarningsGrowthQoQ = %q, want provider fallback", row.EarningsGrowthQoQ)
	}

	snap.EarningsQuarterlyGrowth = nil
	row = BuildRow(snap, nanIndicators())
	if row.EarningsGrowthQoQ != NA {
		t.Errorf("EarningsGrowthQoQ = %q, want N/A", row.EarningsGrowthQoQ)
	}
}
