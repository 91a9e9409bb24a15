package v1

import (
	"time"

	"github.com/ivaaaan/candlestream/pkg/candle"
)

// TradeEvent represents a trade execution from the matching service.
type TradeEvent struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Size      float64   `json:"size"`
	TakerSide string    `json:"taker_side"` // "buy" or "sell"
	Exchange  string    `json:"exchange"`
}

// Tick adapts the event to the aggregation engine's trade contract,
// expressing the timestamp in the given resolution.
func (e *TradeEvent) Tick(res candle.Resolution) candle.BasicTrade {
	side := candle.SideBuy
	if e.TakerSide == "sell" {
		side = candle.SideSell
	}

	var ts int64
	switch res {
	case candle.Second:
		ts = e.Timestamp.Unix()
	case candle.Millisecond:
		ts = e.Timestamp.UnixMilli()
	case candle.Microsecond:
		ts = e.Timestamp.UnixMicro()
	default:
		ts = e.Timestamp.UnixNano()
	}

	return candle.BasicTrade{
		T:     ts,
		P:     e.Price,
		Q:     e.Size,
		Taker: side,
	}
}
