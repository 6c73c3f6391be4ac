// Package yahoo fetches per-ticker market, fundamental and ESG data from the
// public Yahoo Finance JSON endpoints (chart + quoteSummary).
package yahoo

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"esg-stock-screener/internal/api"
	"esg-stock-screener/internal/interfaces"
	"esg-stock-screener/internal/types"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// quoteSummary modules requested in a single call.
const summaryModules = "price,summaryDetail,financialData," +
	"incomeStatementHistory,incomeStatementHistoryQuarterly," +
	"balanceSheetHistory,recommendationTrend,esgScores"

// Config holds the provider settings.
type Config struct {
	BaseURL       string
	HistoryRange  string // chart range, e.g. "5y"
	Timeout       time.Duration
	RatePerMinute float64
}

// Provider is a live Yahoo Finance quote provider. It rate-limits itself so a
// full universe scan stays under the unauthenticated endpoint's tolerance.
type Provider struct {
	client  *api.Client
	limiter *rate.Limiter
	rng     string
}

// Compile-time interface check
var _ interfaces.QuoteProvider = (*Provider)(nil)

// NewProvider creates a live provider.
func NewProvider(cfg Config) *Provider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	historyRange := cfg.HistoryRange
	if historyRange == "" {
		historyRange = "5y"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 45 * time.Second
	}
	perMinute := cfg.RatePerMinute
	if perMinute <= 0 {
		perMinute = 30
	}

	opts := []api.ClientOption{
		api.WithBaseURL(baseURL),
		api.WithTimeout(timeout),
		api.WithLogging(true),
	}
	for k, v := range api.YahooFinanceHeaders() {
		opts = append(opts, api.WithHeader(k, v))
	}
	client := api.NewClient(opts...)

	return &Provider{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(perMinute/60.0), 1),
		rng:     historyRange,
	}
}

// Fetch retrieves the full snapshot for one symbol: quoteSummary modules
// first, then the daily close history from the chart endpoint. A quoteSummary
// failure fails the fetch; missing individual modules do not.
func (p *Provider) Fetch(ctx context.Context, symbol string) (*types.Snapshot, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	snap, err := p.fetchSummary(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("quote summary for %s: %w", symbol, err)
	}

	history, err := p.fetchHistory(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("price history for %s: %w", symbol, err)
	}
	snap.History = history

	return snap, nil
}
