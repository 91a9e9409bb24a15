package candle

import "math"

// welford carries the running mean and sum of squared deviations for
// Welford's online algorithm. A two-pass formula would require the raw
// trade list; this stays O(1) per trade and numerically stable on long
// runs.
type welford struct {
	n    int64
	mean float64
	m2   float64
}

func (w *welford) add(x float64) {
	w.n++
	delta := x - w.mean
	w.mean += delta / float64(w.n)
	w.m2 += delta * (x - w.mean)
}

func (w *welford) reset() {
	w.n = 0
	w.mean = 0
	w.m2 = 0
}

// stdDev returns the population standard deviation.
func (w *welford) stdDev() float64 {
	if w.n == 0 {
		return 0
	}
	return math.Sqrt(w.m2 / float64(w.n))
}

// AveragePrice is the running unweighted mean of trade prices.
type AveragePrice struct {
	w welford
}

// Update folds the trade price into the running mean.
func (a *AveragePrice) Update(t Trade) {
	if !finite(t.Price()) {
		return
	}
	a.w.add(t.Price())
}

// Reset clears the running mean.
func (a *AveragePrice) Reset() { a.w.reset() }

// Value returns the mean price, or 0 before the first trade.
func (a *AveragePrice) Value() float64 { return a.w.mean }

// WeightedPrice is the running size-weighted mean of trade prices.
type WeightedPrice struct {
	weight float64
	mean   float64
}

// Update folds the trade into the weighted mean using its size as weight.
// Zero-size trades carry no weight and are skipped.
func (w *WeightedPrice) Update(t Trade) {
	if !finite(t.Price()) || !finite(t.Size()) || t.Size() <= 0 {
		return
	}
	w.weight += t.Size()
	w.mean += (t.Price() - w.mean) * (t.Size() / w.weight)
}

// Reset clears the weighted mean.
func (w *WeightedPrice) Reset() {
	w.weight = 0
	w.mean = 0
}

// Value returns the size-weighted mean price, or 0 before the first trade.
func (w *WeightedPrice) Value() float64 { return w.mean }

// StdDevPrices is the running population standard deviation of trade prices.
type StdDevPrices struct {
	w welford
}

// Update folds the trade price into the running variance state.
func (s *StdDevPrices) Update(t Trade) {
	if !finite(t.Price()) {
		return
	}
	s.w.add(t.Price())
}

// Reset clears the variance state.
func (s *StdDevPrices) Reset() { s.w.reset() }

// Value returns the population standard deviation of prices.
func (s *StdDevPrices) Value() float64 { return s.w.stdDev() }

// StdDevSizes is the running population standard deviation of trade sizes.
type StdDevSizes struct {
	w welford
}

// Update folds the trade size into the running variance state.
func (s *StdDevSizes) Update(t Trade) {
	if !finite(t.Size()) {
		return
	}
	s.w.add(t.Size())
}

// Reset clears the variance state.
func (s *StdDevSizes) Reset() { s.w.reset() }

// Value returns the population standard deviation of sizes.
func (s *StdDevSizes) Value() float64 { return s.w.stdDev() }
