package candle

// Bar is a composite of statistic accumulators updated and reset as a
// unit. S is the immutable snapshot type emitted when the bar closes.
// The aggregator never inspects individual accumulators; a bar is
// opaque to it beyond these three operations.
type Bar[S any] interface {
	// Update incorporates one trade into every contained accumulator.
	Update(t Trade)
	// Reset returns every contained accumulator to its zero state.
	Reset()
	// Snapshot returns an immutable copy of the bar's current values.
	Snapshot() S
}

// Candle is the emitted snapshot of a CandleBar.
type Candle struct {
	Open          float64
	High          float64
	Low           float64
	Close         float64
	Volume        float64
	TradeCount    int64
	WeightedPrice float64
}

// CandleBar is the standard OHLCV bar: open, high, low, close, volume,
// trade count and size-weighted price. The per-field wiring below is
// the kind of code the bar builder produces for ad-hoc compositions.
type CandleBar struct {
	open   Open
	high   High
	low    Low
	close  Close
	volume Volume
	trades NumTrades
	vwap   WeightedPrice
}

// NewCandleBar creates an empty CandleBar.
func NewCandleBar() *CandleBar {
	return &CandleBar{}
}

// Update feeds the trade to every accumulator.
func (b *CandleBar) Update(t Trade) {
	b.open.Update(t)
	b.high.Update(t)
	b.low.Update(t)
	b.close.Update(t)
	b.volume.Update(t)
	b.trades.Update(t)
	b.vwap.Update(t)
}

// Reset resets every accumulator.
func (b *CandleBar) Reset() {
	b.open.Reset()
	b.high.Reset()
	b.low.Reset()
	b.close.Reset()
	b.volume.Reset()
	b.trades.Reset()
	b.vwap.Reset()
}

// Snapshot returns the current values as an immutable Candle.
func (b *CandleBar) Snapshot() Candle {
	return Candle{
		Open:          b.open.Value(),
		High:          b.high.Value(),
		Low:           b.low.Value(),
		Close:         b.close.Value(),
		Volume:        b.volume.Value(),
		TradeCount:    b.trades.Count(),
		WeightedPrice: b.vwap.Value(),
	}
}

// Open returns the open price of the bar in progress.
func (b *CandleBar) Open() float64 { return b.open.Value() }

// High returns the high price of the bar in progress.
func (b *CandleBar) High() float64 { return b.high.Value() }

// Low returns the low price of the bar in progress.
func (b *CandleBar) Low() float64 { return b.low.Value() }

// Close returns the close price of the bar in progress.
func (b *CandleBar) Close() float64 { return b.close.Value() }

// Volume returns the cumulative volume of the bar in progress.
func (b *CandleBar) Volume() float64 { return b.volume.Value() }

// TradeCount returns the trade count of the bar in progress.
func (b *CandleBar) TradeCount() int64 { return b.trades.Count() }

// StatsCandle is the emitted snapshot of a StatsBar.
type StatsCandle struct {
	Candle

	AveragePrice float64
	StdDevPrices float64
	StdDevSizes  float64
	TimeVelocity float64
	Entropy      float64
}

// StatsBar extends CandleBar with the higher-moment statistics: running
// average price, price/size standard deviation, fill velocity and
// aggressor-side entropy.
type StatsBar struct {
	base     CandleBar
	avg      AveragePrice
	sdPrices StdDevPrices
	sdSizes  StdDevSizes
	velocity *TimeVelocity
	entropy  Entropy
}

// NewStatsBar creates an empty StatsBar for timestamps in the given
// resolution.
func NewStatsBar(res Resolution) *StatsBar {
	return &StatsBar{velocity: NewTimeVelocity(res)}
}

// Update feeds the trade to every accumulator.
func (b *StatsBar) Update(t Trade) {
	b.base.Update(t)
	b.avg.Update(t)
	b.sdPrices.Update(t)
	b.sdSizes.Update(t)
	b.velocity.Update(t)
	b.entropy.Update(t)
}

// Reset resets every accumulator.
func (b *StatsBar) Reset() {
	b.base.Reset()
	b.avg.Reset()
	b.sdPrices.Reset()
	b.sdSizes.Reset()
	b.velocity.Reset()
	b.entropy.Reset()
}

// Snapshot returns the current values as an immutable StatsCandle.
func (b *StatsBar) Snapshot() StatsCandle {
	return StatsCandle{
		Candle:       b.base.Snapshot(),
		AveragePrice: b.avg.Value(),
		StdDevPrices: b.sdPrices.Value(),
		StdDevSizes:  b.sdSizes.Value(),
		TimeVelocity: b.velocity.Value(),
		Entropy:      b.entropy.Value(),
	}
}
