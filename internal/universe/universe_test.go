package universe

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCSVSourceFirstColumn(t *testing.T) {
	path := writeFile(t, "tickers.csv", "Ticker,Name\naapl,Apple\n MSFT ,Microsoft\n\ngoogl,Alphabet\n")
	got := NewCSVSource(path, nil).Tickers()
	want := []string{"AAPL", "MSFT", "GOOGL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tickers() = %v, want %v", got, want)
	}
}

func TestCSVSourceNoHeader(t *testing.T) {
	path := writeFile(t, "tickers.csv", "AAPL\nMSFT\n")
	got := NewCSVSource(path, nil).Tickers()
	want := []string{"AAPL", "MSFT"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tickers() = %v, want %v", got, want)
	}
}

func TestCSVSourceMissingFileFallsBack(t *testing.T) {
	got := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"), nil).Tickers()
	if !reflect.DeepEqual(got, DefaultTickers) {
		t.Fatalf("Tickers() = %v, want default fallback %v", got, DefaultTickers)
	}
}

func TestCSVSourceEmptyFileFallsBack(t *testing.T) {
	path := writeFile(t, "tickers.csv", "")
	fallback := []string{"NVDA"}
	got := NewCSVSource(path, fallback).Tickers()
	if !reflect.DeepEqual(got, fallback) {
		t.Fatalf("Tickers() = %v, want fallback %v", got, fallback)
	}
}

func TestStaticSourceNormalizes(t *testing.T) {
	got := NewStaticSource([]string{" aapl", "", "msft "}).Tickers()
	want := []string{"AAPL", "MSFT"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tickers() = %v, want %v", got, want)
	}
}
