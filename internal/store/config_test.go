package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "data_source: MOCK\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Screener.Concurrency != 1 {
		t.Errorf("expected sequential default, got %d", cfg.Screener.Concurrency)
	}
	if cfg.Screener.MinHistoryPoints != 200 {
		t.Errorf("expected history gate 200, got %d", cfg.Screener.MinHistoryPoints)
	}
	if cfg.Indicators.RSIPeriod != 14 {
		t.Errorf("expected rsi period 14, got %d", cfg.Indicators.RSIPeriod)
	}
	want := []int{20, 50, 200}
	for i, w := range cfg.Indicators.SMAWindows {
		if w != want[i] {
			t.Errorf("sma_windows = %v", cfg.Indicators.SMAWindows)
			break
		}
	}
	if cfg.Indicators.MACDShort != 12 || cfg.Indicators.MACDLong != 26 || cfg.Indicators.MACDSignal != 9 {
		t.Errorf("unexpected macd defaults: %+v", cfg.Indicators)
	}
	if cfg.Provider.HistoryRange != "5y" {
		t.Errorf("expected 5y history, got %q", cfg.Provider.HistoryRange)
	}
}

func TestLoadConfigInvalidSource(t *testing.T) {
	path := writeConfig(t, "data_source: EXCEL\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error for unknown data_source")
	}
}

func TestLoadConfigBadMACD(t *testing.T) {
	path := writeConfig(t, `
data_source: MOCK
indicators:
  macd_short: 30
  macd_long: 26
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error for macd_short >= macd_long")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}
