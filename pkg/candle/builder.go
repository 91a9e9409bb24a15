package candle

// MultiBar is a bar assembled at runtime from named statistics. It is
// the dynamic counterpart of hand-wired bars like CandleBar for callers
// that pick their accumulator set from configuration.
type MultiBar struct {
	names []string
	stats []Statistic
	log   *TradeLog
}

// Values is the emitted snapshot of a MultiBar: statistic values keyed
// by the names they were registered under, plus the raw trades when a
// trade log was attached.
type Values struct {
	Stats  map[string]float64
	Trades []BasicTrade
}

// BarBuilder assembles a MultiBar from named statistics. Names must be
// unique; registering a duplicate panics, since the composition is
// wiring code that runs once at startup.
type BarBuilder struct {
	bar MultiBar
}

// NewBarBuilder creates an empty BarBuilder.
func NewBarBuilder() *BarBuilder {
	return &BarBuilder{}
}

// Add registers a named statistic.
func (b *BarBuilder) Add(name string, s Statistic) *BarBuilder {
	for _, existing := range b.bar.names {
		if existing == name {
			panic("candle: duplicate statistic name " + name)
		}
	}

	b.bar.names = append(b.bar.names, name)
	b.bar.stats = append(b.bar.stats, s)
	return b
}

// WithTradeLog attaches a raw-trade log to the bar.
func (b *BarBuilder) WithTradeLog() *BarBuilder {
	b.bar.log = &TradeLog{}
	return b
}

// Build returns the assembled bar.
func (b *BarBuilder) Build() *MultiBar {
	bar := b.bar
	return &bar
}

// Update feeds the trade to every registered statistic and the trade
// log if attached.
func (m *MultiBar) Update(t Trade) {
	for _, s := range m.stats {
		s.Update(t)
	}
	if m.log != nil {
		m.log.Update(t)
	}
}

// Reset resets every registered statistic and the trade log.
func (m *MultiBar) Reset() {
	for _, s := range m.stats {
		s.Reset()
	}
	if m.log != nil {
		m.log.Reset()
	}
}

// Snapshot returns the current values keyed by statistic name.
func (m *MultiBar) Snapshot() Values {
	v := Values{Stats: make(map[string]float64, len(m.stats))}
	for i, s := range m.stats {
		v.Stats[m.names[i]] = s.Value()
	}
	if m.log != nil {
		v.Trades = append([]BasicTrade(nil), m.log.Trades()...)
	}
	return v
}

// Stat returns the named statistic's current value.
func (m *MultiBar) Stat(name string) (float64, bool) {
	for i, n := range m.names {
		if n == name {
			return m.stats[i].Value(), true
		}
	}
	return 0, false
}
