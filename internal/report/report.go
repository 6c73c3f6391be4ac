// Package report writes the final screening table to disk.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"esg-stock-screener/internal/interfaces"
	"esg-stock-screener/internal/types"
)

// Header is the fixed output column order.
var Header = []string{
	"Ticker",
	"Current Price",
	"PE Ratio",
	"Market Cap",
	"Dividend Yield",
	"Gross Profit",
	"Operating Income",
	"Net Income",
	"Total Cash",
	"Total Debt",
	"Debt to Equity",
	"Free Cash Flow",
	"Operating Cash Flow",
	"Earnings Growth YoY",
	"Revenue Growth YoY",
	"Earnings QoQ Growth",
	"Revenue QoQ Growth",
	"RSI (14)",
	"SMA 20",
	"SMA 50",
	"SMA 200",
	"MACD",
	"Signal Line",
	"Strong Buy",
	"Buy",
	"Hold",
	"Sell",
	"Strong Sell",
	"Total Analysts (Breakdown)",
	"Target Mean",
	"Target High",
	"Target Low",
	"Upside %",
	"Upside View",
	"ESG Total Score",
	"ESG Environment",
	"ESG Social",
	"ESG Governance",
	"ESG Percentile",
	"ESG Theme",
	"Manual ESG Score",
	"Confidence Level",
	"Assessment Criteria",
	"Review Date",
	"Analyst Notes",
	"Upside Bucket",
	"ESG Category",
	"RSI Status",
	"Error Message",
}

// CSVWriter writes screening rows as a plain CSV table.
type CSVWriter struct{}

// Compile-time interface check
var _ interfaces.ReportWriter = (*CSVWriter)(nil)

func NewCSVWriter() *CSVWriter { return &CSVWriter{} }

// Write creates path (and any parent directories) and writes the header plus
// one record per row, in input order.
func (cw *CSVWriter) Write(path string, rows []types.Row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return err
	}
	for i := range rows {
		if err := w.Write(record(&rows[i])); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

func record(r *types.Row) []string {
	return []string{
		r.Ticker,
		r.CurrentPrice,
		r.PERatio,
		r.MarketCap,
		r.DividendYield,
		r.GrossProfit,
		r.OperatingIncome,
		r.NetIncome,
		r.TotalCash,
		r.TotalDebt,
		r.DebtToEquity,
		r.FreeCashFlow,
		r.OperatingCashFlow,
		r.EarningsGrowthYoY,
		r.RevenueGrowthYoY,
		r.EarningsGrowthQoQ,
		r.RevenueGrowthQoQ,
		r.RSI14,
		r.SMA20,
		r.SMA50,
		r.SMA200,
		r.MACD,
		r.SignalLine,
		r.StrongBuy,
		r.Buy,
		r.Hold,
		r.Sell,
		r.StrongSell,
		r.TotalAnalysts,
		r.TargetMean,
		r.TargetHigh,
		r.TargetLow,
		r.UpsidePct,
		r.UpsideView,
		r.ESGTotal,
		r.ESGEnvironment,
		r.ESGSocial,
		r.ESGGovernance,
		r.ESGPercentile,
		r.ESGTheme,
		r.ManualESGScore,
		r.Confidence,
		r.Criteria,
		r.ReviewDate,
		r.AnalystNotes,
		r.UpsideBucket,
		r.ESGCategory,
		r.RSIStatus,
		r.ErrorMessage,
	}
}
