package aggregator

import (
	"context"
	"os"

	"github.com/ivaaaan/candlestream/internal/consumer"
	v1 "github.com/ivaaaan/candlestream/internal/domain/trade/v1"
	barInfra "github.com/ivaaaan/candlestream/internal/infrastructure/questdb/bar"
	"github.com/ivaaaan/candlestream/internal/sink"
	"github.com/ivaaaan/candlestream/internal/stream"
	"github.com/ivaaaan/candlestream/pkg/config"
	"github.com/ivaaaan/candlestream/pkg/logger"
	"github.com/ivaaaan/candlestream/pkg/questdb"
)

// Aggregator wires the trade consumer, the aggregation processor and
// the bar repository together.
type Aggregator struct {
	Consumer  v1.TradeConsumer
	Processor *stream.Processor
	Config    config.Config

	logger     logger.Interface
	db         questdb.QuestDBClient
	repository barInfra.BarRepository
}

// InitAggregator builds the full aggregation pipeline from configuration.
func InitAggregator(ctx context.Context, cfg config.Config) (*Aggregator, error) {
	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		return nil, err
	}

	db, err := questdb.NewClient(ctx, cfg.QuestDB)
	if err != nil {
		return nil, err
	}

	var saver sink.Saver
	if cfg.Sink.Enabled {
		if err := os.MkdirAll(cfg.Sink.Directory, 0o755); err != nil {
			return nil, err
		}
		saver, err = sink.NewSaver(cfg.Sink.Format)
		if err != nil {
			return nil, err
		}
	}

	repository := barInfra.NewRepository(db)

	processor, err := stream.NewProcessor(cfg.Aggregation, cfg.Sink, repository, saver, log)
	if err != nil {
		return nil, err
	}

	return &Aggregator{
		Consumer:   consumer.NewTradeConsumer(cfg.TradeKafka, log),
		Processor:  processor,
		Config:     cfg,
		logger:     log,
		db:         db,
		repository: repository,
	}, nil
}

// Shutdown flushes open bars, stops the consumer and closes the
// database pool. The flush runs in a single transaction so a crash
// mid-shutdown never leaves a partial set of open bars persisted.
func (a *Aggregator) Shutdown(ctx context.Context) {
	if err := a.flushOpen(ctx); err != nil {
		a.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "flush_open_bars",
		})
	}

	if err := a.Consumer.Stop(); err != nil {
		a.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "stop_consumer",
		})
	}

	a.db.Close()
}

func (a *Aggregator) flushOpen(ctx context.Context) error {
	txCtx, err := questdb.Begin(ctx, a.db)
	if err != nil {
		return err
	}

	if err := a.Processor.FlushOpen(txCtx); err != nil {
		if rbErr := questdb.Rollback(txCtx); rbErr != nil {
			a.logger.ErrorContext(ctx, rbErr, logger.Field{
				Key:   "action",
				Value: "rollback_flush",
			})
		}
		return err
	}

	return questdb.Commit(txCtx)
}
