package bar

import (
	"time"

	"github.com/ivaaaan/candlestream/pkg/candle"
)

// Bar represents one persisted candle row.
type Bar struct {
	Timestamp     time.Time // close time of the bar
	Symbol        string
	Window        string // boundary rule label, e.g. "1s", "vol:100", "tick:500"
	Open          float64
	High          float64
	Low           float64
	Close         float64
	Volume        float64
	TradeCount    int64
	WeightedPrice float64
	AveragePrice  float64
	StdDevPrices  float64
	StdDevSizes   float64
	TimeVelocity  float64
	Entropy       float64
}

// FromSnapshot builds a persistable row from an emitted engine snapshot.
func FromSnapshot(symbol, window string, closedAt time.Time, snap candle.StatsCandle) *Bar {
	return &Bar{
		Timestamp:     closedAt,
		Symbol:        symbol,
		Window:        window,
		Open:          snap.Open,
		High:          snap.High,
		Low:           snap.Low,
		Close:         snap.Close,
		Volume:        snap.Volume,
		TradeCount:    snap.TradeCount,
		WeightedPrice: snap.WeightedPrice,
		AveragePrice:  snap.AveragePrice,
		StdDevPrices:  snap.StdDevPrices,
		StdDevSizes:   snap.StdDevSizes,
		TimeVelocity:  snap.TimeVelocity,
		Entropy:       snap.Entropy,
	}
}

// Filter represents the filter criteria for bar data.
type Filter struct {
	Symbol string
	Window string
	From   *time.Time
	To     *time.Time
	Limit  int
}
