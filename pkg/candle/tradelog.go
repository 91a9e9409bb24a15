package candle

// TradeLog is the one accumulator that retains raw history: it appends
// a copy of every trade it observes, in arrival order.
type TradeLog struct {
	trades []BasicTrade
}

// Update appends a copy of the trade.
func (l *TradeLog) Update(t Trade) {
	l.trades = append(l.trades, CopyTrade(t))
}

// Reset discards the retained trades.
func (l *TradeLog) Reset() {
	l.trades = l.trades[:0]
}

// Trades returns the retained trades. The returned slice is owned by the
// log and is invalidated by the next Reset; callers keeping it past a
// bar boundary must copy it.
func (l *TradeLog) Trades() []BasicTrade {
	return l.trades
}

// Len returns the number of retained trades.
func (l *TradeLog) Len() int { return len(l.trades) }
