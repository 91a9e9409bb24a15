package candle

// Side identifies which party initiated a trade.
type Side int8

const (
	// SideBuy means the buyer was the aggressor.
	SideBuy Side = iota
	// SideSell means the seller was the aggressor.
	SideSell
)

// String returns the lowercase name of the side.
func (s Side) String() string {
	if s == SideSell {
		return "sell"
	}
	return "buy"
}

// Trade is the read-only contract the engine requires from an input
// trade record. Any upstream type satisfying it is accepted without
// modification; the engine never mutates a trade.
type Trade interface {
	// Timestamp returns the trade time as an integer whose unit is
	// declared by the Resolution configured on time-based rules.
	Timestamp() int64
	Price() float64
	Size() float64
	Side() Side
}

// BasicTrade is a plain value implementation of Trade. It is used by
// the raw-trade-log accumulator to retain history and is convenient
// for feeding the engine from loaders and tests.
type BasicTrade struct {
	T     int64
	P     float64
	Q     float64
	Taker Side
}

// Timestamp returns the trade time.
func (t BasicTrade) Timestamp() int64 { return t.T }

// Price returns the executed price.
func (t BasicTrade) Price() float64 { return t.P }

// Size returns the executed quantity.
func (t BasicTrade) Size() float64 { return t.Q }

// Side returns the aggressor side.
func (t BasicTrade) Side() Side { return t.Taker }

// CopyTrade copies an arbitrary Trade into a BasicTrade value.
func CopyTrade(t Trade) BasicTrade {
	return BasicTrade{
		T:     t.Timestamp(),
		P:     t.Price(),
		Q:     t.Size(),
		Taker: t.Side(),
	}
}
