// Package screener runs the per-ticker screening pipeline: fetch raw data,
// compute indicators, derive the display row, join manual ESG annotations and
// add the categorical bucket columns.
package screener

import (
	"context"
	"math"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"esg-stock-screener/internal/fundamentals"
	"esg-stock-screener/internal/interfaces"
	"esg-stock-screener/internal/logger"
	"esg-stock-screener/internal/ta"
	"esg-stock-screener/internal/types"
)

// Error messages longer than this are cut so one noisy provider failure
// cannot blow up the report cell.
const maxErrorMessageLen = 100

// Options tunes the pipeline. Zero values fall back to the reference
// behavior: sequential fetching, 200-point history gate, RSI(14),
// SMA 20/50/200, MACD 12/26/9.
type Options struct {
	Concurrency      int
	MinHistoryPoints int
	RSIPeriod        int
	SMAWindows       []int
	MACDShort        int
	MACDLong         int
	MACDSignal       int
}

func (o *Options) applyDefaults() {
	if o.Concurrency <= 0 {
		o.Concurrency = 1
	}
	if o.MinHistoryPoints <= 0 {
		o.MinHistoryPoints = 200
	}
	if o.RSIPeriod <= 0 {
		o.RSIPeriod = 14
	}
	if len(o.SMAWindows) != 3 {
		o.SMAWindows = []int{20, 50, 200}
	}
	if o.MACDShort <= 0 {
		o.MACDShort = 12
	}
	if o.MACDLong <= 0 {
		o.MACDLong = 26
	}
	if o.MACDSignal <= 0 {
		o.MACDSignal = 9
	}
}

// Screener drives the pipeline against a quote provider.
type Screener struct {
	provider interfaces.QuoteProvider
	opts     Options
}

// New creates a screener.
func New(provider interfaces.QuoteProvider, opts Options) *Screener {
	opts.applyDefaults()
	return &Screener{provider: provider, opts: opts}
}

// Run screens every ticker and returns one row per input ticker, in input
// order. Per-ticker failures become error rows; the batch never aborts.
func (s *Screener) Run(ctx context.Context, tickers []string) []types.Row {
	timer := logger.StartOperation(ctx, "screener.Run", "tickers", len(tickers), "concurrency", s.opts.Concurrency)
	defer timer.End()

	rows := make([]types.Row, len(tickers))

	if s.opts.Concurrency <= 1 {
		for i, symbol := range tickers {
			rows[i] = s.processTicker(ctx, symbol)
		}
		return rows
	}

	p := pool.New().WithContext(ctx).WithMaxGoroutines(s.opts.Concurrency)
	for i, symbol := range tickers {
		i, symbol := i, symbol
		p.Go(func(ctx context.Context) error {
			rows[i] = s.processTicker(ctx, symbol)
			return nil
		})
	}
	// Worker errors are folded into per-ticker rows; only context
	// cancellation can surface here.
	if err := p.Wait(); err != nil {
		logger.ErrorWithErr(ctx, "Screening pool interrupted", err)
	}
	return rows
}

// processTicker fetches and derives one row. A fetch failure yields an error
// row carrying only the ticker, the "Error" price marker and a truncated
// message.
func (s *Screener) processTicker(ctx context.Context, symbol string) types.Row {
	snap, err := s.provider.Fetch(ctx, symbol)
	if err != nil {
		logger.Ticker(ctx, symbol, "error", "error", err.Error())
		return errorRow(symbol, err)
	}

	row := fundamentals.BuildRow(snap, s.indicators(snap.Closes()))
	logger.Ticker(ctx, symbol, "ok", "history_points", len(snap.History))
	return row
}

// indicators computes the technical indicators for a close series. Below the
// minimum-history gate everything is undefined; short series are a data
// quality problem, not an error.
func (s *Screener) indicators(closes []float64) fundamentals.Indicators {
	nan := math.NaN()
	ind := fundamentals.Indicators{RSI: nan, SMA20: nan, SMA50: nan, SMA200: nan, MACD: nan, Signal: nan}
	if len(closes) < s.opts.MinHistoryPoints {
		return ind
	}

	ind.RSI = ta.Last(ta.RSISeries(closes, s.opts.RSIPeriod))
	ind.SMA20 = ta.Last(ta.SMASeries(closes, s.opts.SMAWindows[0]))
	ind.SMA50 = ta.Last(ta.SMASeries(closes, s.opts.SMAWindows[1]))
	ind.SMA200 = ta.Last(ta.SMASeries(closes, s.opts.SMAWindows[2]))

	macd, sig, _ := ta.MACDSeries(closes, s.opts.MACDShort, s.opts.MACDLong, s.opts.MACDSignal)
	ind.MACD = ta.Last(macd)
	ind.Signal = ta.Last(sig)
	return ind
}

func errorRow(symbol string, err error) types.Row {
	msg := err.Error()
	if len(msg) > maxErrorMessageLen {
		msg = msg[:maxErrorMessageLen]
	}
	return types.Row{
		Ticker:       symbol,
		CurrentPrice: "Error",
		ErrorMessage: msg,
	}
}

// JoinManualESG left-joins the manual ESG table onto the automated rows by
// normalized ticker. Output has exactly one row per input row; when a ticker
// has several annotation rows the first one wins. Error rows keep their
// manual ESG columns empty.
func JoinManualESG(rows []types.Row, manual []types.ManualESG) []types.Row {
	byTicker := make(map[string]*types.ManualESG, len(manual))
	for i := range manual {
		key := strings.ToUpper(strings.TrimSpace(manual[i].Ticker))
		if _, seen := byTicker[key]; !seen {
			byTicker[key] = &manual[i]
		}
	}

	out := make([]types.Row, len(rows))
	copy(out, rows)
	for i := range out {
		if out[i].IsError() {
			continue
		}
		m, ok := byTicker[strings.ToUpper(strings.TrimSpace(out[i].Ticker))]
		if !ok {
			continue
		}
		out[i].ESGTheme = m.Theme
		out[i].ManualESGScore = m.Score
		out[i].Confidence = m.Confidence
		out[i].Criteria = m.Criteria
		out[i].ReviewDate = m.ReviewDate
		out[i].AnalystNotes = m.Notes
	}
	return out
}

// AddBuckets fills the categorical presentation columns from the formatted
// row values. Runs after the manual ESG join because ESG Category reads the
// manual score. Error rows stay untouched.
func AddBuckets(rows []types.Row) []types.Row {
	out := make([]types.Row, len(rows))
	copy(out, rows)
	for i := range out {
		if out[i].IsError() {
			continue
		}
		out[i].UpsideBucket = fundamentals.UpsideBucket(out[i].UpsidePct)
		out[i].ESGCategory = fundamentals.ESGCategory(out[i].ManualESGScore)
		out[i].RSIStatus = fundamentals.RSIStatus(out[i].RSI14)
	}
	return out
}
