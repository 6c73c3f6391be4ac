package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"esg-stock-screener/internal/logger"
	"esg-stock-screener/internal/report"
	"esg-stock-screener/internal/screener"
	"esg-stock-screener/internal/trace"
)

func main() {
	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		logger.Warn(ctx, "Interrupt received, cancelling run")
		cancel()
	}()

	if err := run(ctx); err != nil {
		logger.ErrorWithErr(ctx, "Screening run failed", err)
		trace.Shutdown(context.Background())
		os.Exit(1)
	}
	trace.Shutdown(context.Background())
}

func run(ctx context.Context) error {
	start := time.Now()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	tickers := initializeUniverse(cfg).Tickers()
	logger.Info(ctx, "Screening universe ready",
		"tickers", len(tickers),
		"data_source", cfg.DataSource,
		"concurrency", cfg.Screener.Concurrency,
	)

	provider := initializeProvider(ctx, cfg)
	scr := screener.New(provider, screenerOptions(cfg))

	rows := scr.Run(ctx, tickers)
	rows = screener.JoinManualESG(rows, initializeESG(cfg).Load())
	rows = screener.AddBuckets(rows)

	if err := report.NewCSVWriter().Write(cfg.OutputFile, rows); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	errors := 0
	for i := range rows {
		if rows[i].IsError() {
			errors++
		}
	}
	logger.Info(ctx, "Screening run complete",
		"output", cfg.OutputFile,
		"rows", len(rows),
		"errors", errors,
		"duration", time.Since(start).String(),
	)
	return nil
}
