package sink

import (
	"fmt"
	"time"

	"github.com/ivaaaan/candlestream/internal/infrastructure/questdb/bar"
)

// Row is the flat record written to file sinks.
type Row struct {
	Timestamp     int64   `json:"t" parquet:"t" csv:"timestamp"`
	Symbol        string  `json:"s" parquet:"s" csv:"symbol"`
	Window        string  `json:"w" parquet:"w" csv:"window"`
	Open          float64 `json:"o" parquet:"o" csv:"open"`
	High          float64 `json:"h" parquet:"h" csv:"high"`
	Low           float64 `json:"l" parquet:"l" csv:"low"`
	Close         float64 `json:"c" parquet:"c" csv:"close"`
	Volume        float64 `json:"v" parquet:"v" csv:"volume"`
	TradeCount    int64   `json:"n" parquet:"n" csv:"trade_count"`
	WeightedPrice float64 `json:"vw,omitempty" parquet:"vw,optional" csv:"weighted_price"`
	AveragePrice  float64 `json:"ap,omitempty" parquet:"ap,optional" csv:"average_price"`
	StdDevPrices  float64 `json:"sdp,omitempty" parquet:"sdp,optional" csv:"stddev_prices"`
	StdDevSizes   float64 `json:"sds,omitempty" parquet:"sds,optional" csv:"stddev_sizes"`
	TimeVelocity  float64 `json:"tv,omitempty" parquet:"tv,optional" csv:"time_velocity"`
	Entropy       float64 `json:"e,omitempty" parquet:"e,optional" csv:"entropy"`
}

// FromBar flattens a repository bar into a sink row.
func FromBar(b *bar.Bar) Row {
	return Row{
		Timestamp:     b.Timestamp.UnixNano(),
		Symbol:        b.Symbol,
		Window:        b.Window,
		Open:          b.Open,
		High:          b.High,
		Low:           b.Low,
		Close:         b.Close,
		Volume:        b.Volume,
		TradeCount:    b.TradeCount,
		WeightedPrice: b.WeightedPrice,
		AveragePrice:  b.AveragePrice,
		StdDevPrices:  b.StdDevPrices,
		StdDevSizes:   b.StdDevSizes,
		TimeVelocity:  b.TimeVelocity,
		Entropy:       b.Entropy,
	}
}

// Saver writes a batch of rows to one file.
type Saver interface {
	Extension() string
	Save(rows []Row, path string) error
}

// NewSaver returns the saver for a configured format name.
func NewSaver(format string) (Saver, error) {
	switch format {
	case "parquet":
		return ParquetSaver{}, nil
	case "csv":
		return CSVSaver{}, nil
	default:
		return nil, fmt.Errorf("unsupported sink format: %s", format)
	}
}

// Filename builds the per-batch output filename: symbol, window and the
// close time of the batch's last bar.
func Filename(symbol, window string, last time.Time, saver Saver) string {
	return fmt.Sprintf("%s_%s_%s.%s", symbol, window, last.UTC().Format("20060102T150405"), saver.Extension())
}
