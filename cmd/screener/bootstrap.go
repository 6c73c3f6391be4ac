package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"esg-stock-screener/internal/esg"
	"esg-stock-screener/internal/interfaces"
	"esg-stock-screener/internal/logger"
	"esg-stock-screener/internal/provider/mock"
	"esg-stock-screener/internal/provider/providerobs"
	"esg-stock-screener/internal/provider/yahoo"
	"esg-stock-screener/internal/screener"
	"esg-stock-screener/internal/store"
	"esg-stock-screener/internal/trace"
	"esg-stock-screener/internal/universe"

	"github.com/joho/godotenv"
)

// initializeSystem initializes environment, logger and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// initializeProvider builds the quote provider with observability
func initializeProvider(ctx context.Context, cfg *store.Config) interfaces.QuoteProvider {
	var provider interfaces.QuoteProvider

	if cfg.DataSource == "LIVE" {
		logger.Info(ctx, "Using LIVE data from Yahoo Finance",
			"history_range", cfg.Provider.HistoryRange,
			"rate_per_minute", cfg.Provider.RatePerMinute,
		)
		provider = yahoo.NewProvider(yahoo.Config{
			BaseURL:       cfg.Provider.BaseURL,
			HistoryRange:  cfg.Provider.HistoryRange,
			Timeout:       time.Duration(cfg.Provider.TimeoutSeconds) * time.Second,
			RatePerMinute: cfg.Provider.RatePerMinute,
		})
	} else {
		logger.Info(ctx, "Using MOCK market data for testing")
		provider = mock.NewProvider()
	}

	// Wrap with observability middleware
	return providerobs.Wrap(provider)
}

// initializeUniverse builds the ticker source
func initializeUniverse(cfg *store.Config) interfaces.TickerSource {
	if len(cfg.UniverseStatic) > 0 {
		return universe.NewStaticSource(cfg.UniverseStatic)
	}
	return universe.NewCSVSource(cfg.UniverseFile, nil)
}

// initializeESG builds the manual ESG annotation source
func initializeESG(cfg *store.Config) interfaces.ESGSource {
	return esg.NewCSVSource(cfg.ManualESGFile)
}

// screenerOptions maps the config into pipeline options
func screenerOptions(cfg *store.Config) screener.Options {
	return screener.Options{
		Concurrency:      cfg.Screener.Concurrency,
		MinHistoryPoints: cfg.Screener.MinHistoryPoints,
		RSIPeriod:        cfg.Indicators.RSIPeriod,
		SMAWindows:       cfg.Indicators.SMAWindows,
		MACDShort:        cfg.Indicators.MACDShort,
		MACDLong:         cfg.Indicators.MACDLong,
		MACDSignal:       cfg.Indicators.MACDSignal,
	}
}
