package interfaces

import (
	"context"

	"esg-stock-screener/internal/types"
)

// QuoteProvider fetches the full per-ticker snapshot: live quote,
// fundamentals, analyst data, ESG scores and daily price history.
type QuoteProvider interface {
	Fetch(ctx context.Context, symbol string) (*types.Snapshot, error)
}
