package candle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func trades(prices ...float64) []BasicTrade {
	out := make([]BasicTrade, 0, len(prices))
	for i, p := range prices {
		out = append(out, BasicTrade{T: int64(i), P: p, Q: 1, Taker: SideBuy})
	}
	return out
}

func TestOHLCAccumulators(t *testing.T) {
	seq := trades(100, 105, 95, 102)

	var open Open
	var high High
	var low Low
	var cls Close

	for _, tr := range seq {
		open.Update(tr)
		high.Update(tr)
		low.Update(tr)
		cls.Update(tr)
	}

	assert.Equal(t, 100.0, open.Value())
	assert.Equal(t, 105.0, high.Value())
	assert.Equal(t, 95.0, low.Value())
	assert.Equal(t, 102.0, cls.Value())

	assert.LessOrEqual(t, low.Value(), open.Value())
	assert.LessOrEqual(t, low.Value(), cls.Value())
	assert.GreaterOrEqual(t, high.Value(), open.Value())
	assert.GreaterOrEqual(t, high.Value(), cls.Value())
}

func TestOpen_IgnoresSubsequentTrades(t *testing.T) {
	var open Open
	for _, tr := range trades(50, 60, 70) {
		open.Update(tr)
	}
	assert.Equal(t, 50.0, open.Value())

	open.Reset()
	open.Update(BasicTrade{P: 80, Q: 1})
	assert.Equal(t, 80.0, open.Value())
}

func TestVolumeAndNumTrades(t *testing.T) {
	var vol Volume
	var num NumTrades

	sizes := []float64{1.5, 2.5, 0, 3}
	for i, q := range sizes {
		tr := BasicTrade{T: int64(i), P: 100, Q: q}
		vol.Update(tr)
		num.Update(tr)
	}

	assert.InDelta(t, 7.0, vol.Value(), 1e-12)
	assert.Equal(t, int64(4), num.Count())

	vol.Reset()
	num.Reset()
	assert.Equal(t, 0.0, vol.Value())
	assert.Equal(t, int64(0), num.Count())
}

func TestAveragePrice_MatchesDirectMean(t *testing.T) {
	prices := []float64{100.1, 99.7, 101.3, 100.0, 98.9, 102.4}

	var avg AveragePrice
	sum := 0.0
	for i, p := range prices {
		avg.Update(BasicTrade{T: int64(i), P: p, Q: 1})
		sum += p
	}

	assert.InDelta(t, sum/float64(len(prices)), avg.Value(), 1e-12)
}

func TestWeightedPrice(t *testing.T) {
	testCases := []struct {
		name     string
		trades   []BasicTrade
		expected float64
	}{
		{
			name: "uniform weights equal plain mean",
			trades: []BasicTrade{
				{P: 100, Q: 1},
				{P: 200, Q: 1},
			},
			expected: 150,
		},
		{
			name: "heavier trade dominates",
			trades: []BasicTrade{
				{P: 100, Q: 3},
				{P: 200, Q: 1},
			},
			expected: 125,
		},
		{
			name: "zero size trades carry no weight",
			trades: []BasicTrade{
				{P: 100, Q: 2},
				{P: 500, Q: 0},
			},
			expected: 100,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var wp WeightedPrice
			for _, tr := range testCase.trades {
				wp.Update(tr)
			}
			assert.InDelta(t, testCase.expected, wp.Value(), 1e-9)
		})
	}
}

// Incremental Welford state must match a direct two-pass computation.
func TestStdDevPrices_MatchesTwoPass(t *testing.T) {
	prices := []float64{100.02, 100.01, 99.98, 100.05, 99.95, 100.11, 99.87, 100.0, 100.03, 99.99}

	var sd StdDevPrices
	for i, p := range prices {
		sd.Update(BasicTrade{T: int64(i), P: p, Q: 1})
	}

	mean := 0.0
	for _, p := range prices {
		mean += p
	}
	mean /= float64(len(prices))

	sumSq := 0.0
	for _, p := range prices {
		sumSq += (p - mean) * (p - mean)
	}
	twoPass := math.Sqrt(sumSq / float64(len(prices)))

	assert.InEpsilon(t, twoPass, sd.Value(), 1e-9)
}

func TestStdDevSizes_MatchesTwoPass(t *testing.T) {
	sizes := []float64{1, 2, 4, 8, 16, 32}

	var sd StdDevSizes
	mean := 0.0
	for i, q := range sizes {
		sd.Update(BasicTrade{T: int64(i), P: 100, Q: q})
		mean += q
	}
	mean /= float64(len(sizes))

	sumSq := 0.0
	for _, q := range sizes {
		sumSq += (q - mean) * (q - mean)
	}
	twoPass := math.Sqrt(sumSq / float64(len(sizes)))

	assert.InEpsilon(t, twoPass, sd.Value(), 1e-9)
}

func TestStdDev_SingleTradeIsZero(t *testing.T) {
	var sd StdDevPrices
	sd.Update(BasicTrade{P: 100, Q: 1})
	assert.Equal(t, 0.0, sd.Value())
}

func TestEntropy(t *testing.T) {
	testCases := []struct {
		name     string
		sides    []Side
		expected float64
	}{
		{
			name:     "empty is zero",
			sides:    nil,
			expected: 0,
		},
		{
			name:     "one sided is exactly zero",
			sides:    []Side{SideBuy, SideBuy, SideBuy, SideBuy},
			expected: 0,
		},
		{
			name:     "balanced is exactly one bit",
			sides:    []Side{SideBuy, SideSell, SideBuy, SideSell},
			expected: 1,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var e Entropy
			for _, s := range testCase.sides {
				e.Update(BasicTrade{P: 100, Q: 1, Taker: s})
			}
			assert.Equal(t, testCase.expected, e.Value())
		})
	}
}

func TestEntropy_SkewedBetweenZeroAndOne(t *testing.T) {
	var e Entropy
	for _, s := range []Side{SideBuy, SideBuy, SideBuy, SideSell} {
		e.Update(BasicTrade{P: 100, Q: 1, Taker: s})
	}

	assert.Greater(t, e.Value(), 0.0)
	assert.Less(t, e.Value(), 1.0)
}

func TestTimeVelocity(t *testing.T) {
	v := NewTimeVelocity(Millisecond)

	// 4 trades over 2 seconds of trade clock.
	for _, ts := range []int64{0, 500, 1500, 2000} {
		v.Update(BasicTrade{T: ts, P: 100, Q: 1})
	}

	assert.InDelta(t, 2.0, v.Value(), 1e-9)

	v.Reset()
	assert.Equal(t, 0.0, v.Value())
}

func TestTimeVelocity_ZeroSpan(t *testing.T) {
	v := NewTimeVelocity(Second)
	v.Update(BasicTrade{T: 10, P: 100, Q: 1})
	assert.Equal(t, 0.0, v.Value())
}

func TestTradeLog(t *testing.T) {
	var log TradeLog

	seq := trades(100, 101, 102)
	for _, tr := range seq {
		log.Update(tr)
	}

	assert.Equal(t, 3, log.Len())
	assert.Equal(t, seq, log.Trades())

	log.Reset()
	assert.Equal(t, 0, log.Len())
}

func TestAccumulators_RejectNonFiniteInput(t *testing.T) {
	var high High
	var vol Volume
	var avg AveragePrice
	var sd StdDevPrices

	high.Update(BasicTrade{P: 100, Q: 1})
	vol.Update(BasicTrade{P: 100, Q: 1})
	avg.Update(BasicTrade{P: 100, Q: 1})
	sd.Update(BasicTrade{P: 100, Q: 1})
	sd.Update(BasicTrade{P: 102, Q: 1})

	prevSd := sd.Value()

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		high.Update(BasicTrade{P: bad, Q: bad})
		vol.Update(BasicTrade{P: 100, Q: bad})
		avg.Update(BasicTrade{P: bad, Q: 1})
		sd.Update(BasicTrade{P: bad, Q: 1})
	}

	assert.Equal(t, 100.0, high.Value())
	assert.Equal(t, 1.0, vol.Value())
	assert.Equal(t, 100.0, avg.Value())
	assert.Equal(t, prevSd, sd.Value())
	assert.False(t, math.IsNaN(sd.Value()))
}
