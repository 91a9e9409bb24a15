package candle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRuleConstructors_RejectNonPositiveConfig(t *testing.T) {
	testCases := []struct {
		name      string
		construct func() error
	}{
		{
			name: "time rule zero period",
			construct: func() error {
				_, err := NewTimeRule(0, Millisecond)
				return err
			},
		},
		{
			name: "time rule negative period",
			construct: func() error {
				_, err := NewTimeRule(-time.Second, Millisecond)
				return err
			},
		},
		{
			name: "aligned time rule zero period",
			construct: func() error {
				_, err := NewAlignedTimeRule(0, Second)
				return err
			},
		},
		{
			name: "volume rule zero threshold",
			construct: func() error {
				_, err := NewVolumeRule(0)
				return err
			},
		},
		{
			name: "volume rule negative threshold",
			construct: func() error {
				_, err := NewVolumeRule(-5)
				return err
			},
		},
		{
			name: "tick rule zero threshold",
			construct: func() error {
				_, err := NewTickRule(0)
				return err
			},
		},
		{
			name: "relative price rule zero threshold",
			construct: func() error {
				_, err := NewRelativePriceRule(0)
				return err
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Error(t, testCase.construct())
		})
	}
}

func TestRulePolicies(t *testing.T) {
	timeRule, err := NewTimeRule(time.Second, Millisecond)
	assert.NoError(t, err)
	alignedRule, err := NewAlignedTimeRule(time.Second, Millisecond)
	assert.NoError(t, err)
	volumeRule, err := NewVolumeRule(10)
	assert.NoError(t, err)
	tickRule, err := NewTickRule(10)
	assert.NoError(t, err)
	priceRule, err := NewRelativePriceRule(50)
	assert.NoError(t, err)

	assert.Equal(t, DeferTrigger, timeRule.Policy())
	assert.Equal(t, DeferTrigger, alignedRule.Policy())
	assert.Equal(t, IncludeTrigger, volumeRule.Policy())
	assert.Equal(t, IncludeTrigger, tickRule.Policy())
	assert.Equal(t, IncludeTrigger, priceRule.Policy())
}

func TestVolumeRule_ClosesOnThreshold(t *testing.T) {
	rule, err := NewVolumeRule(3)
	assert.NoError(t, err)

	closes := make([]bool, 0, 5)
	for i := 0; i < 5; i++ {
		tr := BasicTrade{T: int64(i), P: 100, Q: 1}
		closed := rule.ShouldClose(tr)
		closes = append(closes, closed)
		if closed {
			rule.Reset()
		}
	}

	// Threshold 3 with unit sizes: fires on the 3rd trade, then the
	// counter restarts from zero with no carry-over.
	assert.Equal(t, []bool{false, false, true, false, false}, closes)
}

func TestVolumeRule_NoCarryOverOfExcess(t *testing.T) {
	rule, err := NewVolumeRule(3)
	assert.NoError(t, err)

	// 5 units overshoot the threshold by 2; the excess is discarded.
	assert.True(t, rule.ShouldClose(BasicTrade{P: 100, Q: 5}))
	rule.Reset()

	assert.False(t, rule.ShouldClose(BasicTrade{P: 100, Q: 2}))
	assert.True(t, rule.ShouldClose(BasicTrade{P: 100, Q: 1}))
}

func TestTickRule_ClosesOnCount(t *testing.T) {
	rule, err := NewTickRule(2)
	assert.NoError(t, err)

	assert.False(t, rule.ShouldClose(BasicTrade{P: 100, Q: 1}))
	assert.True(t, rule.ShouldClose(BasicTrade{P: 100, Q: 1}))

	rule.Reset()
	assert.False(t, rule.ShouldClose(BasicTrade{P: 100, Q: 1}))
}

func TestTimeRule_ElapsedPeriod(t *testing.T) {
	rule, err := NewTimeRule(time.Second, Millisecond)
	assert.NoError(t, err)

	assert.False(t, rule.ShouldClose(BasicTrade{T: 0, P: 100, Q: 1}))
	assert.False(t, rule.ShouldClose(BasicTrade{T: 500, P: 100, Q: 1}))
	assert.False(t, rule.ShouldClose(BasicTrade{T: 999, P: 100, Q: 1}))
	assert.True(t, rule.ShouldClose(BasicTrade{T: 1000, P: 100, Q: 1}))
}

func TestTimeRule_ResolutionNormalization(t *testing.T) {
	rule, err := NewTimeRule(time.Minute, Second)
	assert.NoError(t, err)

	assert.False(t, rule.ShouldClose(BasicTrade{T: 100, P: 100, Q: 1}))
	assert.False(t, rule.ShouldClose(BasicTrade{T: 159, P: 100, Q: 1}))
	assert.True(t, rule.ShouldClose(BasicTrade{T: 160, P: 100, Q: 1}))
}

func TestAlignedTimeRule_ClosesOnEpochAlignedBoundary(t *testing.T) {
	rule, err := NewAlignedTimeRule(time.Second, Millisecond)
	assert.NoError(t, err)

	// First trade mid-window: boundary snaps to the next exact multiple.
	assert.False(t, rule.ShouldClose(BasicTrade{T: 700, P: 100, Q: 1}))
	assert.False(t, rule.ShouldClose(BasicTrade{T: 999, P: 100, Q: 1}))
	assert.True(t, rule.ShouldClose(BasicTrade{T: 1000, P: 100, Q: 1}))

	rule.Reset()

	// After reset the next boundary realigns off the first trade seen.
	assert.False(t, rule.ShouldClose(BasicTrade{T: 1000, P: 100, Q: 1}))
	assert.False(t, rule.ShouldClose(BasicTrade{T: 1999, P: 100, Q: 1}))
	assert.True(t, rule.ShouldClose(BasicTrade{T: 2000, P: 100, Q: 1}))
}

func TestAlignedTimeRule_SkipsEmptyWindows(t *testing.T) {
	rule, err := NewAlignedTimeRule(time.Second, Millisecond)
	assert.NoError(t, err)

	assert.False(t, rule.ShouldClose(BasicTrade{T: 100, P: 100, Q: 1}))
	// A long gap past several boundaries still closes exactly once.
	assert.True(t, rule.ShouldClose(BasicTrade{T: 5300, P: 100, Q: 1}))
}

func TestTimeRule_LastBoundary(t *testing.T) {
	rule, err := NewTimeRule(time.Second, Millisecond)
	assert.NoError(t, err)

	assert.False(t, rule.ShouldClose(BasicTrade{T: 250, P: 100, Q: 1}))
	// The closing trade may arrive arbitrarily late after a quiet gap;
	// the window still ends one period after its first trade.
	assert.True(t, rule.ShouldClose(BasicTrade{T: 9800, P: 100, Q: 1}))
	assert.Equal(t, (250*time.Millisecond + time.Second).Nanoseconds(), rule.LastBoundary())
}

func TestAlignedTimeRule_LastBoundaryIsPeriodMultiple(t *testing.T) {
	rule, err := NewAlignedTimeRule(time.Second, Millisecond)
	assert.NoError(t, err)

	assert.False(t, rule.ShouldClose(BasicTrade{T: 700, P: 100, Q: 1}))
	assert.True(t, rule.ShouldClose(BasicTrade{T: 5300, P: 100, Q: 1}))

	// The closed window's edge is the exact epoch-aligned multiple, not
	// the triggering trade's timestamp.
	assert.Equal(t, time.Second.Nanoseconds(), rule.LastBoundary())
	assert.Zero(t, rule.LastBoundary()%time.Second.Nanoseconds())
}

func TestRelativePriceRule_BasisPointMove(t *testing.T) {
	// 50 bps of 10000 is 50.
	rule, err := NewRelativePriceRule(50)
	assert.NoError(t, err)

	assert.False(t, rule.ShouldClose(BasicTrade{P: 10000, Q: 1}))
	assert.False(t, rule.ShouldClose(BasicTrade{P: 10049, Q: 1}))
	assert.True(t, rule.ShouldClose(BasicTrade{P: 10050, Q: 1}))

	rule.Reset()

	// Moves are measured from the new window's reference, both directions.
	assert.False(t, rule.ShouldClose(BasicTrade{P: 10050, Q: 1}))
	assert.True(t, rule.ShouldClose(BasicTrade{P: 9990, Q: 1}))
}
