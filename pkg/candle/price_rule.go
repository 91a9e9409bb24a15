package candle

import (
	"fmt"
	"math"
)

// RelativePriceRule closes a bar once the absolute price move from the
// window's reference price reaches the configured basis-point threshold
// (Renko-style boxes). The triggering trade is included in the bar it
// completes; the next window's reference is its first trade.
type RelativePriceRule struct {
	basisPoints float64

	ref   float64
	armed bool
}

// NewRelativePriceRule creates a RelativePriceRule. The basis-point
// threshold must be positive.
func NewRelativePriceRule(basisPoints float64) (*RelativePriceRule, error) {
	if basisPoints <= 0 {
		return nil, fmt.Errorf("relative price rule threshold must be positive, got %v bps", basisPoints)
	}

	return &RelativePriceRule{basisPoints: basisPoints}, nil
}

// ShouldClose reports whether the trade's price has moved far enough
// from the reference. The first valid trade since reset becomes the
// reference and never closes.
func (r *RelativePriceRule) ShouldClose(t Trade) bool {
	price := t.Price()
	if !finite(price) || price <= 0 {
		return false
	}

	if !r.armed {
		r.ref = price
		r.armed = true
		return false
	}

	moveBps := math.Abs(price-r.ref) / r.ref * 10_000
	return moveBps >= r.basisPoints
}

// Reset clears the reference price.
func (r *RelativePriceRule) Reset() {
	r.ref = 0
	r.armed = false
}

// Policy includes the triggering trade in the closing bar.
func (r *RelativePriceRule) Policy() TriggerPolicy { return IncludeTrigger }
