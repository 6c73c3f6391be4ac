package fundamentals

import (
	"esg-stock-screener/internal/types"
)

// Indicators carries the technical-indicator values computed for a ticker.
// NaN means undefined (series too short or history gate not met).
type Indicators struct {
	RSI    float64
	SMA20  float64
	SMA50  float64
	SMA200 float64
	MACD   float64
	Signal float64
}

// BuildRow derives the display row for one ticker from its raw snapshot and
// precomputed indicators. It never fails: every metric that cannot be
// derived renders as "N/A".
func BuildRow(snap *types.Snapshot, ind Indicators) types.Row {
	row := types.Row{Ticker: snap.Symbol}

	price := snap.Price()
	row.CurrentPrice = Decimal2(deref(price))
	row.PERatio = Decimal2(deref(snap.PE()))
	row.MarketCap = Billions(deref(snap.MarketCap))
	row.DividendYield = Decimal4(deref(snap.DividendYield))

	// Annual income statement
	row.GrossProfit = Billions(Latest(snap.IncomeAnnual, grossProfitLabels...))
	row.OperatingIncome = Billions(Latest(snap.IncomeAnnual, operatingIncomeLabels...))
	row.NetIncome = Billions(Latest(snap.IncomeAnnual, earningsLabels...))

	// Balance sheet
	row.TotalCash = Billions(Latest(snap.BalanceAnnual, totalCashLabels...))
	row.TotalDebt = Billions(Latest(snap.BalanceAnnual, totalDebtLabels...))
	debt, debtOK := Latest(snap.BalanceAnnual, totalDebtLabels...)
	equity, equityOK := Latest(snap.BalanceAnnual, equityLabels...)
	row.DebtToEquity = Decimal2(DebtToEquity(debt, equity, debtOK, equityOK))

	// Cash flow
	row.FreeCashFlow = Billions(Latest(snap.CashflowAnnual, freeCashflowLabels...))
	row.OperatingCashFlow = Billions(Latest(snap.CashflowAnnual, operatingCashflowLabels...))

	// Annual growth: provider-reported values first, statement-derived fills
	row.EarningsGrowthYoY = Percent2(annualGrowth(snap.EarningsGrowth, snap.IncomeAnnual, earningsLabels))
	row.RevenueGrowthYoY = Percent2(annualGrowth(snap.RevenueGrowth, snap.IncomeAnnual, revenueLabels))

	// Quarterly growth: statement-derived first, provider fields as fallback
	row.EarningsGrowthQoQ = Percent2(quarterlyGrowth(snap.EarningsQuarterlyGrowth, snap.IncomeQuarterly, earningsLabels))
	row.RevenueGrowthQoQ = Percent2(quarterlyGrowth(snap.RevenueQuarterlyGrowth, snap.IncomeQuarterly, revenueLabels))

	// Technicals
	row.RSI14 = Indicator(ind.RSI)
	row.SMA20 = Indicator(ind.SMA20)
	row.SMA50 = Indicator(ind.SMA50)
	row.SMA200 = Indicator(ind.SMA200)
	row.MACD = Indicator(ind.MACD)
	row.SignalLine = Indicator(ind.Signal)

	// Analyst votes
	votes, votesOK := LatestVotes(snap.Recommendations)
	row.StrongBuy = Count(votes.StrongBuy, votesOK)
	row.Buy = Count(votes.Buy, votesOK)
	row.Hold = Count(votes.Hold, votesOK)
	row.Sell = Count(votes.Sell, votesOK)
	row.StrongSell = Count(votes.StrongSell, votesOK)
	row.TotalAnalysts = Count(votes.Total(), votesOK)

	// Price targets and upside
	row.TargetMean = Decimal2(deref(snap.TargetMeanPrice))
	row.TargetHigh = Decimal2(deref(snap.TargetHighPrice))
	row.TargetLow = Decimal2(deref(snap.TargetLowPrice))
	upside, upsideOK := Upside(price, snap.TargetMeanPrice)
	row.UpsidePct = PercentPoints2(upside, upsideOK)
	row.UpsideView = UpsideLabel(upside, upsideOK)

	// Provider ESG passthrough
	if snap.ESG != nil {
		row.ESGTotal = Decimal2(deref(snap.ESG.Total))
		row.ESGEnvironment = Decimal2(deref(snap.ESG.Environment))
		row.ESGSocial = Decimal2(deref(snap.ESG.Social))
		row.ESGGovernance = Decimal2(deref(snap.ESG.Governance))
		row.ESGPercentile = Decimal2(deref(snap.ESG.Percentile))
	} else {
		row.ESGTotal, row.ESGEnvironment, row.ESGSocial = NA, NA, NA
		row.ESGGovernance, row.ESGPercentile = NA, NA
	}

	return row
}

func annualGrowth(reported *float64, t types.StatementTable, labels []string) (float64, bool) {
	if reported != nil {
		return *reported, true
	}
	return StatementGrowth(t, labels...)
}

func quarterlyGrowth(reported *float64, t types.StatementTable, labels []string) (float64, bool) {
	if g, ok := StatementGrowth(t, labels...); ok {
		return g, true
	}
	if reported != nil {
		return *reported, true
	}
	return 0, false
}
