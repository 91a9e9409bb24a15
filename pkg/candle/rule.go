package candle

// TriggerPolicy declares on which side of the bar update a rule's
// boundary check runs, and therefore which bar the triggering trade
// lands in. The asymmetry between the two categories is deliberate and
// must be preserved per rule.
type TriggerPolicy int

const (
	// IncludeTrigger closes the bar after the triggering trade has been
	// counted into it. Threshold-crossing rules (volume, tick, price
	// move) use this: the trade that reaches the threshold belongs to
	// the bar it completes.
	IncludeTrigger TriggerPolicy = iota
	// DeferTrigger closes the bar before the triggering trade is
	// applied, routing that trade into the next window. Time-windowed
	// rules use this: a trade at or past the window edge opens the next
	// bar.
	DeferTrigger
)

// Rule is a stateful predicate deciding when the current bar ends. It
// carries whatever counters it needs (window edges, cumulative volume,
// tick counts, reference prices) and is owned exclusively by one
// aggregator.
type Rule interface {
	// ShouldClose reports whether the current bar is complete given the
	// incoming trade. It may mutate internal counters as a side effect
	// of evaluation and must be deterministic for a given state and
	// trade.
	ShouldClose(t Trade) bool
	// Reset reinitializes counters for the next window. The aggregator
	// calls it immediately after a boundary fires, in lockstep with the
	// bar reset.
	Reset()
	// Policy reports which side of the bar update the check runs on.
	Policy() TriggerPolicy
}

// Windowed is implemented by time-based rules. LastBoundary reports the
// nanosecond edge of the most recently closed window, which is the true
// close time of the emitted bar; the trade that triggered the close
// already belongs to the next window and may be arbitrarily late.
type Windowed interface {
	LastBoundary() int64
}
