package stream

import (
	"context"
	"path/filepath"
	"time"

	v1 "github.com/ivaaaan/candlestream/internal/domain/trade/v1"
	"github.com/ivaaaan/candlestream/internal/infrastructure/questdb/bar"
	"github.com/ivaaaan/candlestream/internal/sink"
	"github.com/ivaaaan/candlestream/pkg/candle"
	"github.com/ivaaaan/candlestream/pkg/config"
	"github.com/ivaaaan/candlestream/pkg/errors"
	"github.com/ivaaaan/candlestream/pkg/logger"
	"github.com/ivaaaan/candlestream/pkg/util"
)

// Processor routes trade events into per-symbol aggregators and fans
// emitted bars out to the repository and the optional file sink. The
// engine provides no locking, so the processor keeps exactly one
// aggregator per symbol and must be driven from a single goroutine.
type Processor struct {
	cfg     config.AggregationConfig
	sinkCfg config.SinkConfig
	window  string
	res     candle.Resolution

	repo   bar.BarRepository
	saver  sink.Saver
	logger logger.Interface

	symbols    map[string]*symbolState
	buffered   []sink.Row
	lastClose  time.Time
	lastSymbol string
}

// symbolState is one symbol's aggregator plus the rule it was built
// with. The rule is retained because time-windowed rules report the
// closed window's edge, which is the bar's true close time.
type symbolState struct {
	agg       *candle.Aggregator[candle.StatsCandle]
	rule      candle.Rule
	lastTrade time.Time
}

// NewProcessor creates a Processor. The rule configuration is probed
// once here so invalid thresholds or periods fail at startup, not on
// the first trade. saver may be nil when the file sink is disabled.
func NewProcessor(
	cfg config.AggregationConfig,
	sinkCfg config.SinkConfig,
	repo bar.BarRepository,
	saver sink.Saver,
	log logger.Interface,
) (*Processor, error) {
	if _, err := cfg.NewRule(); err != nil {
		return nil, errors.TracerFromError(errors.NewErrorDetails(
			err.Error(), string(errors.RuleConfigError), "aggregation.rule",
		))
	}

	res, err := cfg.ParseResolution()
	if err != nil {
		return nil, errors.TracerFromError(errors.NewErrorDetails(
			err.Error(), string(errors.RuleConfigError), "aggregation.resolution",
		))
	}

	return &Processor{
		cfg:     cfg,
		sinkCfg: sinkCfg,
		window:  cfg.Window(),
		res:     res,
		repo:    repo,
		saver:   saver,
		logger:  log,
		symbols: make(map[string]*symbolState),
	}, nil
}

// HandleTrade consumes one trade event. When the event's symbol crosses
// its bar boundary, the emitted bar is persisted and buffered for the
// file sink.
func (p *Processor) HandleTrade(ctx context.Context, event *v1.TradeEvent) error {
	ctx = util.WithStreamID(ctx, event.Symbol)

	st, err := p.state(event.Symbol)
	if err != nil {
		return err
	}

	snap, closed := st.agg.Update(event.Tick(p.res))
	closedAt := p.closeTime(st, event)
	st.lastTrade = event.Timestamp

	if !closed {
		return nil
	}

	row := bar.FromSnapshot(event.Symbol, p.window, closedAt, snap)
	if err := p.repo.Store(ctx, row); err != nil {
		return errors.TracerFromError(errors.NewErrorDetails(
			err.Error(), string(errors.CandleStoreError), "symbol",
		))
	}

	p.logger.DebugContext(ctx, "bar emitted",
		logger.Field{Key: "symbol", Value: event.Symbol},
		logger.Field{Key: "window", Value: p.window},
		logger.Field{Key: "trades", Value: snap.TradeCount},
	)

	return p.buffer(ctx, row)
}

// closeTime resolves the close timestamp of the bar the event just
// closed. Time-windowed rules defer the triggering trade into the next
// window, so their bar closes at the window edge, not at the (possibly
// much later) triggering trade. Threshold rules include the trigger, so
// its own timestamp is the close time.
func (p *Processor) closeTime(st *symbolState, event *v1.TradeEvent) time.Time {
	if w, ok := st.rule.(candle.Windowed); ok {
		return time.Unix(0, w.LastBoundary()).UTC()
	}
	return event.Timestamp
}

// FlushOpen emits and persists every symbol's partially-filled open
// bar, stamped with its last trade's time. Called on shutdown; never
// during normal aggregation.
func (p *Processor) FlushOpen(ctx context.Context) error {
	var rows []*bar.Bar
	for symbol, st := range p.symbols {
		snap, ok := st.agg.Flush()
		if !ok {
			continue
		}
		rows = append(rows, bar.FromSnapshot(symbol, p.window, st.lastTrade, snap))
	}

	if len(rows) > 0 {
		if err := p.repo.StoreBatch(ctx, rows); err != nil {
			return errors.TracerFromError(errors.NewErrorDetails(
				err.Error(), string(errors.CandleStoreError), "flush",
			))
		}
	}

	return p.drain(ctx)
}

// state returns the symbol's aggregation state, creating it on first
// use. Each symbol gets its own rule and bar instance; they are never
// shared.
func (p *Processor) state(symbol string) (*symbolState, error) {
	if st, ok := p.symbols[symbol]; ok {
		return st, nil
	}

	rule, err := p.cfg.NewRule()
	if err != nil {
		return nil, errors.TracerFromError(errors.NewErrorDetails(
			err.Error(), string(errors.RuleConfigError), "aggregation.rule",
		))
	}

	st := &symbolState{
		agg:  candle.NewAggregator[candle.StatsCandle](rule, candle.NewStatsBar(p.res)),
		rule: rule,
	}
	p.symbols[symbol] = st
	return st, nil
}

// buffer queues a bar for the file sink and writes a batch file once
// the configured flush size is reached.
func (p *Processor) buffer(ctx context.Context, row *bar.Bar) error {
	if p.saver == nil || !p.sinkCfg.Enabled {
		return nil
	}

	p.buffered = append(p.buffered, sink.FromBar(row))
	p.lastClose = row.Timestamp
	p.lastSymbol = row.Symbol

	if len(p.buffered) < p.sinkCfg.FlushSize {
		return nil
	}
	return p.drain(ctx)
}

// drain writes all buffered rows to one sink file.
func (p *Processor) drain(ctx context.Context) error {
	if p.saver == nil || len(p.buffered) == 0 {
		return nil
	}

	path := filepath.Join(p.sinkCfg.Directory, sink.Filename(p.lastSymbol, p.window, p.lastClose, p.saver))
	if err := p.saver.Save(p.buffered, path); err != nil {
		return errors.TracerFromError(errors.NewErrorDetails(
			err.Error(), string(errors.SinkWriteError), "sink.path",
		))
	}

	p.logger.InfoContext(ctx, "sink batch written",
		logger.Field{Key: "path", Value: path},
		logger.Field{Key: "bars", Value: len(p.buffered)},
	)

	p.buffered = p.buffered[:0]
	return nil
}
