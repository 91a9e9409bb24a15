package candle

import "fmt"

// TickRule closes a bar once the trade count since reset reaches the
// configured threshold. The triggering trade is included in the bar it
// completes.
type TickRule struct {
	threshold int64
	count     int64
}

// NewTickRule creates a TickRule. The threshold must be positive.
func NewTickRule(threshold int64) (*TickRule, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("tick rule threshold must be positive, got %d", threshold)
	}

	return &TickRule{threshold: threshold}, nil
}

// ShouldClose counts the trade and reports whether the threshold has
// been reached.
func (r *TickRule) ShouldClose(Trade) bool {
	r.count++
	return r.count >= r.threshold
}

// Reset zeroes the tick count.
func (r *TickRule) Reset() { r.count = 0 }

// Policy includes the triggering trade in the closing bar.
func (r *TickRule) Policy() TriggerPolicy { return IncludeTrigger }
