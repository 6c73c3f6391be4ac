package interfaces

import "esg-stock-screener/internal/types"

// TickerSource yields the screening universe. Implementations never fail the
// run; an unreadable source falls back to a built-in default list.
type TickerSource interface {
	Tickers() []string
}

// ESGSource yields the manually curated ESG annotation table, keyed by
// normalized ticker. A missing source yields an empty table, not an error.
type ESGSource interface {
	Load() []types.ManualESG
}
