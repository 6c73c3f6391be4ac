package mock

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"esg-stock-screener/internal/interfaces"
	"esg-stock-screener/internal/types"
)

// Provider generates deterministic per-symbol snapshots for testing and
// offline runs. The same symbol always yields the same data.
type Provider struct {
	historyBars int
}

// Compile-time interface check
var _ interfaces.QuoteProvider = (*Provider)(nil)

// NewProvider creates a mock provider with a 5-year daily history.
func NewProvider() *Provider {
	return &Provider{historyBars: 1260}
}

// NewProviderWithHistory creates a mock provider with a fixed history length.
// Useful for exercising the minimum-history gate.
func NewProviderWithHistory(bars int) *Provider {
	return &Provider{historyBars: bars}
}

// Fetch returns a synthetic snapshot for the symbol. Symbols containing
// "INVALID" fail, mirroring how a real provider rejects unknown tickers.
func (p *Provider) Fetch(ctx context.Context, symbol string) (*types.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.Contains(strings.ToUpper(symbol), "INVALID") {
		return nil, fmt.Errorf("no data found for symbol %s", symbol)
	}

	r := rand.New(rand.NewSource(symbolSeed(symbol)))

	price := 50.0 + r.Float64()*450.0
	history := p.generateHistory(r, price)

	revenueNow := 50e9 + r.Float64()*200e9
	revenuePrev := revenueNow / (1.0 + (-0.1 + r.Float64()*0.4))
	netIncomeNow := revenueNow * (0.05 + r.Float64()*0.25)
	netIncomePrev := netIncomeNow / (1.0 + (-0.2 + r.Float64()*0.6))
	equity := revenueNow * (0.3 + r.Float64()*0.7)
	debt := equity * r.Float64() * 2.0

	targetMean := price * (0.9 + r.Float64()*0.35)
	targetHigh := targetMean * (1.1 + r.Float64()*0.2)
	targetLow := targetMean * (0.7 + r.Float64()*0.2)

	snap := &types.Snapshot{
		Symbol:          symbol,
		CurrentPrice:    f(price),
		TrailingPE:      f(10.0 + r.Float64()*40.0),
		MarketCap:       f(revenueNow * (2.0 + r.Float64()*6.0)),
		DividendYield:   f(r.Float64() * 0.03),
		TargetMeanPrice: f(targetMean),
		TargetHighPrice: f(targetHigh),
		TargetLowPrice:  f(targetLow),
		IncomeAnnual: types.StatementTable{
			"Total Revenue":    {revenueNow, revenuePrev},
			"Gross Profit":     {revenueNow * 0.45, revenuePrev * 0.43},
			"Operating Income": {revenueNow * 0.25, revenuePrev * 0.23},
			"Net Income":       {netIncomeNow, netIncomePrev},
		},
		IncomeQuarterly: types.StatementTable{
			"Total Revenue": {revenueNow / 4 * 1.05, revenueNow / 4},
			"Net Income":    {netIncomeNow / 4 * 1.08, netIncomeNow / 4},
		},
		BalanceAnnual: types.StatementTable{
			"Total Cash":   {revenueNow * 0.2},
			"Total Debt":   {debt},
			"Total Equity": {equity},
		},
		CashflowAnnual: types.StatementTable{
			"Free Cash Flow":      {netIncomeNow * 0.9},
			"Operating Cash Flow": {netIncomeNow * 1.2},
		},
		Recommendations: []types.RecommendationRow{
			{Period: "0m", StrongBuy: 5 + r.Intn(15), Buy: 10 + r.Intn(15), Hold: 5 + r.Intn(10), Sell: r.Intn(4), StrongSell: r.Intn(2)},
			{Period: "-1m", StrongBuy: 5 + r.Intn(15), Buy: 10 + r.Intn(15), Hold: 5 + r.Intn(10), Sell: r.Intn(4), StrongSell: r.Intn(2)},
		},
		ESG: &types.ESGScores{
			Total:       f(20.0 + r.Float64()*60.0),
			Environment: f(5.0 + r.Float64()*25.0),
			Social:      f(5.0 + r.Float64()*25.0),
			Governance:  f(5.0 + r.Float64()*25.0),
			Percentile:  f(r.Float64() * 100.0),
		},
		History: history,
	}
	return snap, nil
}

// generateHistory produces a daily random walk ending near the spot price.
func (p *Provider) generateHistory(r *rand.Rand, endPrice float64) []types.PriceBar {
	if p.historyBars <= 0 {
		return nil
	}
	bars := make([]types.PriceBar, p.historyBars)
	price := endPrice * (0.5 + r.Float64())
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -p.historyBars)
	for i := range bars {
		price *= 1.0 + (-0.02 + r.Float64()*0.041)
		if price < 1.0 {
			price = 1.0
		}
		day = day.AddDate(0, 0, 1)
		bars[i] = types.PriceBar{Date: day, Close: price}
	}
	return bars
}

func symbolSeed(symbol string) int64 {
	seed := int64(0)
	for _, c := range symbol {
		seed = seed*31 + int64(c)
	}
	return seed
}

func f(v float64) *float64 { return &v }
