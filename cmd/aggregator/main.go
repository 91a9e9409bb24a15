package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ivaaaan/candlestream/app/aggregator"
	"github.com/ivaaaan/candlestream/pkg/config"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	agg, err := aggregator.InitAggregator(ctx, *cfg)
	if err != nil {
		slog.Error("Failed to create aggregator", "error", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		agg.Consumer.Start(ctx)
	}()
	go func() {
		defer wg.Done()
		agg.Consumer.Subscribe(ctx, agg.Processor.HandleTrade)
	}()

	<-quit

	slog.Info("Shutting down aggregator...")
	cancel()
	wg.Wait()
	agg.Shutdown(context.Background())

	slog.Info("Aggregator stopped")
}
