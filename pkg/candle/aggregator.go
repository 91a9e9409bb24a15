package candle

// Aggregator drives one boundary rule and one bar over a stream of
// trades. Each trade is consumed exactly once, in arrival order; when a
// boundary is crossed the aggregator emits an immutable snapshot of the
// bar and resets bar and rule state in lockstep.
//
// An aggregator exclusively owns its rule and bar. It provides no
// internal locking: parallel ingestion is done with one aggregator per
// partition, never by sharing an instance.
type Aggregator[S any] struct {
	rule Rule
	bar  Bar[S]

	// trades currently accumulated in the open bar; used only to keep
	// Flush from emitting an empty bar.
	pending int64
}

// NewAggregator creates an aggregator owning the given rule and bar.
func NewAggregator[S any](rule Rule, bar Bar[S]) *Aggregator[S] {
	return &Aggregator[S]{
		rule: rule,
		bar:  bar,
	}
}

// Update consumes one trade. It returns a populated snapshot and true
// only on the call where a boundary is crossed; the triggering trade is
// routed into the closing or the next bar per the rule's policy. An
// emitted bar always contains at least one trade.
func (a *Aggregator[S]) Update(t Trade) (S, bool) {
	var zero S

	if a.rule.Policy() == DeferTrigger {
		if a.rule.ShouldClose(t) {
			snap := a.bar.Snapshot()
			a.bar.Reset()
			a.rule.Reset()
			a.pending = 0

			// The deferred trade seeds the next window's rule state and
			// becomes the new bar's first trade.
			a.rule.ShouldClose(t)
			a.bar.Update(t)
			a.pending++
			return snap, true
		}

		a.bar.Update(t)
		a.pending++
		return zero, false
	}

	a.bar.Update(t)
	a.pending++

	if a.rule.ShouldClose(t) {
		snap := a.bar.Snapshot()
		a.bar.Reset()
		a.rule.Reset()
		a.pending = 0
		return snap, true
	}

	return zero, false
}

// Flush emits the partially-filled open bar and resets state. It is an
// explicit caller-requested operation, never performed by Update; it
// returns false when no trade has been accumulated since the last emit.
func (a *Aggregator[S]) Flush() (S, bool) {
	var zero S
	if a.pending == 0 {
		return zero, false
	}

	snap := a.bar.Snapshot()
	a.bar.Reset()
	a.rule.Reset()
	a.pending = 0
	return snap, true
}

// Pending returns the number of trades held in the open bar.
func (a *Aggregator[S]) Pending() int64 { return a.pending }
