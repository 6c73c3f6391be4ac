package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"esg-stock-screener/internal/api"
	"esg-stock-screener/internal/types"
)

// chartResponse mirrors /v8/finance/chart.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// fetchHistory loads the daily closing-price series for the configured range.
// Null closes (halted days) are skipped so the series stays dense.
func (p *Provider) fetchHistory(ctx context.Context, symbol string) ([]types.PriceBar, error) {
	path := fmt.Sprintf("/v8/finance/chart/%s?range=%s&interval=1d",
		url.PathEscape(symbol), url.QueryEscape(p.rng))

	req := api.NewRequest("GET", path).WithContext(ctx)
	resp, err := p.client.DoWithRetry(req, nil)
	if err != nil {
		return nil, err
	}

	var parsed chartResponse
	if err := resp.ParseJSON(&parsed); err != nil {
		return nil, err
	}
	if parsed.Chart.Error != nil {
		return nil, parsed.Chart.Error
	}
	if len(parsed.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart result for %s", symbol)
	}

	result := parsed.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart result for %s has no quote data", symbol)
	}

	closes := result.Indicators.Quote[0].Close
	bars := make([]types.PriceBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		bars = append(bars, types.PriceBar{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}
	return bars, nil
}
