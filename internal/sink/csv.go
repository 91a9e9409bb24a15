package sink

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVSaver writes rows as a CSV file with a header line.
type CSVSaver struct{}

// Extension returns the file extension for csv output.
func (CSVSaver) Extension() string { return "csv" }

// Save writes the rows to path.
func (CSVSaver) Save(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"timestamp", "symbol", "window", "open", "high", "low", "close",
		"volume", "trade_count", "weighted_price", "average_price",
		"stddev_prices", "stddev_sizes", "time_velocity", "entropy",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatInt(r.Timestamp, 10),
			r.Symbol,
			r.Window,
			floatStr(r.Open),
			floatStr(r.High),
			floatStr(r.Low),
			floatStr(r.Close),
			floatStr(r.Volume),
			strconv.FormatInt(r.TradeCount, 10),
			floatStr(r.WeightedPrice),
			floatStr(r.AveragePrice),
			floatStr(r.StdDevPrices),
			floatStr(r.StdDevSizes),
			floatStr(r.TimeVelocity),
			floatStr(r.Entropy),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
