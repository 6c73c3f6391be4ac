// Package universe loads the list of tickers to screen.
package universe

import (
	"context"
	"encoding/csv"
	"os"
	"strings"

	"esg-stock-screener/internal/interfaces"
	"esg-stock-screener/internal/logger"
)

// DefaultTickers is used whenever the configured universe cannot be read.
// A missing ticker file never fails the run.
var DefaultTickers = []string{"AAPL", "MSFT", "GOOGL", "TSLA", "AMZN"}

// CSVSource reads tickers from the first column of a CSV file.
type CSVSource struct {
	path     string
	fallback []string
}

// Compile-time interface checks
var (
	_ interfaces.TickerSource = (*CSVSource)(nil)
	_ interfaces.TickerSource = (*StaticSource)(nil)
)

// NewCSVSource creates a ticker source backed by a CSV file. An empty
// fallback means DefaultTickers.
func NewCSVSource(path string, fallback []string) *CSVSource {
	if len(fallback) == 0 {
		fallback = DefaultTickers
	}
	return &CSVSource{path: path, fallback: fallback}
}

// Tickers returns the universe. Any read failure logs a warning and returns
// the fallback list.
func (s *CSVSource) Tickers() []string {
	ctx := context.Background()

	f, err := os.Open(s.path)
	if err != nil {
		logger.Warn(ctx, "Ticker file unavailable, using fallback universe",
			"path", s.path, "error", err, "fallback_count", len(s.fallback))
		return s.fallback
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		logger.Warn(ctx, "Ticker file unreadable, using fallback universe",
			"path", s.path, "error", err)
		return s.fallback
	}

	tickers := make([]string, 0, len(records))
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		sym := strings.ToUpper(strings.TrimSpace(rec[0]))
		if sym == "" {
			continue
		}
		// Tolerate a header row
		if i == 0 && (sym == "TICKER" || sym == "SYMBOL") {
			continue
		}
		tickers = append(tickers, sym)
	}
	if len(tickers) == 0 {
		logger.Warn(ctx, "Ticker file empty, using fallback universe", "path", s.path)
		return s.fallback
	}

	logger.Info(ctx, "Loaded ticker universe", "path", s.path, "count", len(tickers))
	return tickers
}

// StaticSource serves a fixed in-config universe.
type StaticSource struct {
	tickers []string
}

func NewStaticSource(tickers []string) *StaticSource {
	normalized := make([]string, 0, len(tickers))
	for _, t := range tickers {
		sym := strings.ToUpper(strings.TrimSpace(t))
		if sym != "" {
			normalized = append(normalized, sym)
		}
	}
	return &StaticSource{tickers: normalized}
}

func (s *StaticSource) Tickers() []string { return s.tickers }
