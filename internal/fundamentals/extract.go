package fundamentals

import (
	"esg-stock-screener/internal/types"
)

// Alternative label spellings per logical metric, in probe priority order.
// Providers are inconsistent about statement line-item naming; the first
// label present in a table wins and there is no combining across labels.
var (
	revenueLabels           = []string{"Total Revenue", "Revenue", "Operating Revenue", "Sales Revenue"}
	earningsLabels          = []string{"Net Income", "Net Income Common Stockholders", "Net Income Continuous Operations"}
	grossProfitLabels       = []string{"Gross Profit"}
	operatingIncomeLabels   = []string{"Operating Income", "EBIT"}
	totalCashLabels         = []string{"Total Cash"}
	totalDebtLabels         = []string{"Total Debt"}
	equityLabels            = []string{"Total Equity", "Total Stockholder Equity", "Stockholders Equity"}
	freeCashflowLabels      = []string{"Free Cash Flow"}
	operatingCashflowLabels = []string{"Operating Cash Flow"}
)

// FirstPresent probes candidate labels in order and returns the period values
// of the first label present in the table.
func FirstPresent(t types.StatementTable, labels ...string) ([]float64, bool) {
	if t == nil {
		return nil, false
	}
	for _, label := range labels {
		if vals, ok := t[label]; ok && len(vals) > 0 {
			return vals, true
		}
	}
	return nil, false
}

// Latest returns the most recent period value for the first matching label.
func Latest(t types.StatementTable, labels ...string) (float64, bool) {
	vals, ok := FirstPresent(t, labels...)
	if !ok {
		return 0, false
	}
	return vals[0], true
}

// Growth computes (current − previous) / previous over a most-recent-first
// value sequence. Undefined with fewer than two periods or a zero previous
// value; a zero denominator must yield undefined, never a crash.
func Growth(vals []float64) (float64, bool) {
	if len(vals) < 2 {
		return 0, false
	}
	current, previous := vals[0], vals[1]
	if previous == 0 {
		return 0, false
	}
	return (current - previous) / previous, true
}

// StatementGrowth probes the table for a metric and computes its
// period-over-period growth.
func StatementGrowth(t types.StatementTable, labels ...string) (float64, bool) {
	vals, ok := FirstPresent(t, labels...)
	if !ok {
		return 0, false
	}
	return Growth(vals)
}

// DebtToEquity is total debt over total equity, undefined when either is
// missing or equity is zero.
func DebtToEquity(debt, equity float64, debtOK, equityOK bool) (float64, bool) {
	if !debtOK || !equityOK || equity == 0 {
		return 0, false
	}
	return debt / equity, true
}

// Upside is the analyst target upside in percent:
// (target − price) / price × 100. Undefined on a missing operand or a zero
// price.
func Upside(price, target *float64) (float64, bool) {
	if price == nil || target == nil || *price == 0 {
		return 0, false
	}
	return (*target - *price) / *price * 100.0, true
}

// UpsideLabel buckets an upside percentage for display.
func UpsideLabel(pct float64, ok bool) string {
	switch {
	case !ok:
		return NA
	case pct >= 15:
		return "High Upside"
	case pct >= 5:
		return "Moderate Upside"
	default:
		return "Limited / Downside"
	}
}

// Votes is the analyst recommendation breakdown for the most recent period.
type Votes struct {
	StrongBuy, Buy, Hold, Sell, StrongSell int
}

// Total is the number of analysts across all five categories.
func (v Votes) Total() int {
	return v.StrongBuy + v.Buy + v.Hold + v.Sell + v.StrongSell
}

// LatestVotes selects the most-recent recommendation row: the "0m" period if
// the table carries period labels, otherwise the last row. A missing
// category counted as zero by the row type, so partial rows still sum.
func LatestVotes(rows []types.RecommendationRow) (Votes, bool) {
	if len(rows) == 0 {
		return Votes{}, false
	}
	hasPeriods := false
	for _, r := range rows {
		if r.Period != "" {
			hasPeriods = true
			break
		}
	}
	var pick *types.RecommendationRow
	if hasPeriods {
		for i := range rows {
			if rows[i].Period == "0m" {
				pick = &rows[i]
				break
			}
		}
	} else {
		pick = &rows[len(rows)-1]
	}
	if pick == nil {
		return Votes{}, false
	}
	return Votes{
		StrongBuy:  pick.StrongBuy,
		Buy:        pick.Buy,
		Hold:       pick.Hold,
		Sell:       pick.Sell,
		StrongSell: pick.StrongSell,
	}, true
}
