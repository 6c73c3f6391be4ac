package screener

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"esg-stock-screener/internal/provider/mock"
	"esg-stock-screener/internal/types"
)

func TestRunOneRowPerTicker(t *testing.T) {
	s := New(mock.NewProvider(), Options{})
	tickers := []string{"AAPL", "ZZZZINVALID"}

	rows := s.Run(context.Background(), tickers)
	if len(rows) != len(tickers) {
		t.Fatalf("got %d rows for %d tickers", len(rows), len(tickers))
	}

	if rows[0].Ticker != "AAPL" || rows[0].IsError() {
		t.Errorf("AAPL row unexpected: %+v", rows[0])
	}
	if rows[0].CurrentPrice == "" || rows[0].CurrentPrice == "N/A" {
		t.Errorf("AAPL price missing: %q", rows[0].CurrentPrice)
	}
	if rows[0].SMA200 == "N/A" || rows[0].MACD == "N/A" {
		t.Errorf("indicators should be defined with full mock history: %+v", rows[0])
	}

	if !rows[1].IsError() {
		t.Fatalf("invalid ticker did not produce an error row: %+v", rows[1])
	}
	if rows[1].Ticker != "ZZZZINVALID" || rows[1].ErrorMessage == "" {
		t.Errorf("error row malformed: %+v", rows[1])
	}
	if rows[1].PERatio != "" || rows[1].ESGTotal != "" {
		t.Errorf("error row should leave other columns empty: %+v", rows[1])
	}
}

func TestRunConcurrentPreservesOrder(t *testing.T) {
	s := New(mock.NewProvider(), Options{Concurrency: 4})
	tickers := []string{"AAPL", "MSFT", "GOOGL", "TSLA", "AMZN", "NVDA"}

	rows := s.Run(context.Background(), tickers)
	if len(rows) != len(tickers) {
		t.Fatalf("got %d rows, want %d", len(rows), len(tickers))
	}
	for i, sym := range tickers {
		if rows[i].Ticker != sym {
			t.Errorf("row %d = %s, want %s", i, rows[i].Ticker, sym)
		}
	}

	// Deterministic provider: concurrent and sequential runs must agree.
	seq := New(mock.NewProvider(), Options{}).Run(context.Background(), tickers)
	for i := range rows {
		if rows[i] != seq[i] {
			t.Errorf("row %d differs between concurrent and sequential runs", i)
		}
	}
}

func TestShortHistoryGatesIndicators(t *testing.T) {
	s := New(mock.NewProviderWithHistory(50), Options{})
	rows := s.Run(context.Background(), []string{"AAPL"})

	row := rows[0]
	if row.IsError() {
		t.Fatalf("short history must not be an error: %+v", row)
	}
	for name, v := range map[string]string{
		"RSI14": row.RSI14, "SMA20": row.SMA20, "SMA50": row.SMA50,
		"SMA200": row.SMA200, "MACD": row.MACD, "SignalLine": row.SignalLine,
	} {
		if v != "N/A" {
			t.Errorf("%s = %q, want N/A below the history gate", name, v)
		}
	}
	if row.CurrentPrice == "N/A" {
		t.Errorf("fundamentals should survive the history gate")
	}
}

func TestErrorMessageTruncated(t *testing.T) {
	long := fmt.Errorf("%s", strings.Repeat("x", 300))
	row := errorRow("AAPL", long)
	if len(row.ErrorMessage) != maxErrorMessageLen {
		t.Fatalf("message length %d, want %d", len(row.ErrorMessage), maxErrorMessageLen)
	}
}

func TestJoinManualESG(t *testing.T) {
	rows := []types.Row{
		{Ticker: "AAPL", CurrentPrice: "189.25"},
		{Ticker: "MSFT", CurrentPrice: "410.10"},
		{Ticker: "BAD", CurrentPrice: "Error", ErrorMessage: "no data"},
	}
	manual := []types.ManualESG{
		{Ticker: "aapl ", Theme: "Climate", Score: "72", Confidence: "High"},
		{Ticker: "AAPL", Theme: "Duplicate", Score: "1"},
		{Ticker: "BAD", Theme: "ShouldNotJoin", Score: "99"},
	}

	joined := JoinManualESG(rows, manual)
	if len(joined) != len(rows) {
		t.Fatalf("join changed row count: %d -> %d", len(rows), len(joined))
	}
	if joined[0].ESGTheme != "Climate" || joined[0].ManualESGScore != "72" {
		t.Errorf("first manual match should win: %+v", joined[0])
	}
	if joined[0].CurrentPrice != "189.25" {
		t.Errorf("join must preserve automated values: %+v", joined[0])
	}
	if joined[1].ESGTheme != "" {
		t.Errorf("unmatched ticker should keep empty manual fields: %+v", joined[1])
	}
	if joined[2].ESGTheme != "" {
		t.Errorf("error row must not receive manual fields: %+v", joined[2])
	}
}

func TestAddBuckets(t *testing.T) {
	rows := []types.Row{
		{Ticker: "AAPL", CurrentPrice: "189.25", UpsidePct: "12.50%", ManualESGScore: "72", RSI14: "75.10"},
		{Ticker: "MSFT", CurrentPrice: "410.10", UpsidePct: "N/A", ManualESGScore: "", RSI14: "N/A"},
		{Ticker: "BAD", CurrentPrice: "Error", ErrorMessage: "no data"},
	}

	out := AddBuckets(rows)
	if out[0].UpsideBucket != "High (>10%)" || out[0].ESGCategory != "Good (≥60)" || out[0].RSIStatus != "Overbought (>70)" {
		t.Errorf("buckets wrong: %+v", out[0])
	}
	if out[1].UpsideBucket != "N/A" || out[1].ESGCategory != "N/A" || out[1].RSIStatus != "N/A" {
		t.Errorf("undefined inputs should bucket to N/A: %+v", out[1])
	}
	if out[2].UpsideBucket != "" || out[2].ESGCategory != "" || out[2].RSIStatus != "" {
		t.Errorf("error row should keep empty bucket columns: %+v", out[2])
	}
}
