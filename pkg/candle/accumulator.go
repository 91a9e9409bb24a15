package candle

import "math"

// Accumulator is a single-purpose, resettable, incrementally-updatable
// value derived from a sequence of trades. Update must be amortized O(1)
// and must tolerate being the first call since Reset. An accumulator may
// only look at the trade passed to Update, never at its siblings.
type Accumulator interface {
	Update(t Trade)
	Reset()
}

// Statistic is an Accumulator whose derived value is a single float64.
// Value must not mutate state.
type Statistic interface {
	Accumulator
	Value() float64
}

// finite reports whether x is a usable numeric input. Non-finite prices
// and sizes are rejected per-accumulator so a single bad trade cannot
// poison running mean/variance state.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
