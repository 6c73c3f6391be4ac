package yahoo

import (
	"context"
	"fmt"
	"net/url"

	"esg-stock-screener/internal/api"
	"esg-stock-screener/internal/types"
)

// rawValue is Yahoo's numeric wrapper: {"raw": 1.23, "fmt": "1.23"}. A module
// omits the key entirely when it has no value, so Raw stays nil.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []summaryResult `json:"result"`
		Error  *apiError       `json:"error"`
	} `json:"quoteSummary"`
}

type summaryResult struct {
	Price *struct {
		RegularMarketPrice rawValue `json:"regularMarketPrice"`
		MarketCap          rawValue `json:"marketCap"`
	} `json:"price"`

	SummaryDetail *struct {
		TrailingPE    rawValue `json:"trailingPE"`
		ForwardPE     rawValue `json:"forwardPE"`
		DividendYield rawValue `json:"dividendYield"`
	} `json:"summaryDetail"`

	FinancialData *struct {
		CurrentPrice      rawValue `json:"currentPrice"`
		TargetMeanPrice   rawValue `json:"targetMeanPrice"`
		TargetHighPrice   rawValue `json:"targetHighPrice"`
		TargetLowPrice    rawValue `json:"targetLowPrice"`
		EarningsGrowth    rawValue `json:"earningsGrowth"`
		RevenueGrowth     rawValue `json:"revenueGrowth"`
		TotalCash         rawValue `json:"totalCash"`
		TotalDebt         rawValue `json:"totalDebt"`
		FreeCashflow      rawValue `json:"freeCashflow"`
		OperatingCashflow rawValue `json:"operatingCashflow"`
	} `json:"financialData"`

	IncomeStatementHistory *struct {
		Statements []incomeStatement `json:"incomeStatementHistory"`
	} `json:"incomeStatementHistory"`

	IncomeStatementHistoryQuarterly *struct {
		Statements []incomeStatement `json:"incomeStatementHistory"`
	} `json:"incomeStatementHistoryQuarterly"`

	BalanceSheetHistory *struct {
		Statements []balanceSheet `json:"balanceSheetStatements"`
	} `json:"balanceSheetHistory"`

	RecommendationTrend *struct {
		Trend []types.RecommendationRow `json:"trend"`
	} `json:"recommendationTrend"`

	ESGScores *struct {
		TotalESG         rawValue `json:"totalEsg"`
		EnvironmentScore rawValue `json:"environmentScore"`
		SocialScore      rawValue `json:"socialScore"`
		GovernanceScore  rawValue `json:"governanceScore"`
		Percentile       rawValue `json:"percentile"`
	} `json:"esgScores"`
}

type incomeStatement struct {
	TotalRevenue    rawValue `json:"totalRevenue"`
	GrossProfit     rawValue `json:"grossProfit"`
	OperatingIncome rawValue `json:"operatingIncome"`
	NetIncome       rawValue `json:"netIncome"`
}

type balanceSheet struct {
	TotalStockholderEquity rawValue `json:"totalStockholderEquity"`
}

// fetchSummary calls /v10/finance/quoteSummary and maps the modules into the
// snapshot bag. Statement periods arrive most recent first and keep that
// order.
func (p *Provider) fetchSummary(ctx context.Context, symbol string) (*types.Snapshot, error) {
	path := fmt.Sprintf("/v10/finance/quoteSummary/%s?modules=%s",
		url.PathEscape(symbol), url.QueryEscape(summaryModules))

	req := api.NewRequest("GET", path).WithContext(ctx)
	resp, err := p.client.DoWithRetry(req, nil)
	if err != nil {
		return nil, err
	}

	var parsed summaryResponse
	if err := resp.ParseJSON(&parsed); err != nil {
		return nil, err
	}
	if parsed.QuoteSummary.Error != nil {
		return nil, parsed.QuoteSummary.Error
	}
	if len(parsed.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no data found for symbol %s", symbol)
	}

	return mapSummary(symbol, parsed.QuoteSummary.Result[0]), nil
}

func mapSummary(symbol string, res summaryResult) *types.Snapshot {
	snap := &types.Snapshot{Symbol: symbol}

	if res.Price != nil {
		snap.RegularMarketPrice = res.Price.RegularMarketPrice.Raw
		snap.MarketCap = res.Price.MarketCap.Raw
	}
	if res.SummaryDetail != nil {
		snap.TrailingPE = res.SummaryDetail.TrailingPE.Raw
		snap.ForwardPE = res.SummaryDetail.ForwardPE.Raw
		snap.DividendYield = res.SummaryDetail.DividendYield.Raw
	}
	if fd := res.FinancialData; fd != nil {
		snap.CurrentPrice = fd.CurrentPrice.Raw
		snap.TargetMeanPrice = fd.TargetMeanPrice.Raw
		snap.TargetHighPrice = fd.TargetHighPrice.Raw
		snap.TargetLowPrice = fd.TargetLowPrice.Raw
		snap.EarningsGrowth = fd.EarningsGrowth.Raw
		snap.RevenueGrowth = fd.RevenueGrowth.Raw

		balance := types.StatementTable{}
		appendRaw(balance, "Total Cash", fd.TotalCash)
		appendRaw(balance, "Total Debt", fd.TotalDebt)
		if res.BalanceSheetHistory != nil {
			for _, st := range res.BalanceSheetHistory.Statements {
				appendRaw(balance, "Total Stockholder Equity", st.TotalStockholderEquity)
			}
		}
		if len(balance) > 0 {
			snap.BalanceAnnual = balance
		}

		cashflow := types.StatementTable{}
		appendRaw(cashflow, "Free Cash Flow", fd.FreeCashflow)
		appendRaw(cashflow, "Operating Cash Flow", fd.OperatingCashflow)
		if len(cashflow) > 0 {
			snap.CashflowAnnual = cashflow
		}
	} else if res.BalanceSheetHistory != nil {
		balance := types.StatementTable{}
		for _, st := range res.BalanceSheetHistory.Statements {
			appendRaw(balance, "Total Stockholder Equity", st.TotalStockholderEquity)
		}
		if len(balance) > 0 {
			snap.BalanceAnnual = balance
		}
	}

	if res.IncomeStatementHistory != nil {
		snap.IncomeAnnual = incomeTable(res.IncomeStatementHistory.Statements)
	}
	if res.IncomeStatementHistoryQuarterly != nil {
		snap.IncomeQuarterly = incomeTable(res.IncomeStatementHistoryQuarterly.Statements)
	}
	if res.RecommendationTrend != nil {
		snap.Recommendations = res.RecommendationTrend.Trend
	}
	if esg := res.ESGScores; esg != nil {
		snap.ESG = &types.ESGScores{
			Total:       esg.TotalESG.Raw,
			Environment: esg.EnvironmentScore.Raw,
			Social:      esg.SocialScore.Raw,
			Governance:  esg.GovernanceScore.Raw,
			Percentile:  esg.Percentile.Raw,
		}
	}

	return snap
}

// incomeTable converts income statements into a labeled table, one value per
// period. A line item missing in one period is skipped for that period only,
// which matches how providers report partial statements.
func incomeTable(statements []incomeStatement) types.StatementTable {
	if len(statements) == 0 {
		return nil
	}
	t := types.StatementTable{}
	for _, st := range statements {
		appendRaw(t, "Total Revenue", st.TotalRevenue)
		appendRaw(t, "Gross Profit", st.GrossProfit)
		appendRaw(t, "Operating Income", st.OperatingIncome)
		appendRaw(t, "Net Income", st.NetIncome)
	}
	if len(t) == 0 {
		return nil
	}
	return t
}

func appendRaw(t types.StatementTable, label string, v rawValue) {
	if v.Raw != nil {
		t[label] = append(t[label], *v.Raw)
	}
}
