package providerobs

import (
	"context"

	"esg-stock-screener/internal/interfaces"
	"esg-stock-screener/internal/logger"
	"esg-stock-screener/internal/trace"
	"esg-stock-screener/internal/types"
)

// observableProvider wraps a QuoteProvider with observability (logging & tracing)
type observableProvider struct {
	provider interfaces.QuoteProvider
}

// Compile-time interface check
var _ interfaces.QuoteProvider = (*observableProvider)(nil)

// Wrap wraps a provider with observability middleware
func Wrap(provider interfaces.QuoteProvider) interfaces.QuoteProvider {
	return &observableProvider{
		provider: provider,
	}
}

// Fetch retrieves a snapshot with observability
func (op *observableProvider) Fetch(ctx context.Context, symbol string) (*types.Snapshot, error) {
	ctx, span := trace.StartSpan(ctx, "provider.Fetch")
	defer span.End()

	logger.Debug(ctx, "Fetching snapshot", "symbol", symbol)

	snap, err := op.provider.Fetch(ctx, symbol)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to fetch snapshot", err, "symbol", symbol)
		return nil, err
	}

	logger.Debug(ctx, "Snapshot fetched successfully",
		"symbol", symbol,
		"history_points", len(snap.History),
		"has_esg", snap.ESG != nil,
	)
	return snap, nil
}
