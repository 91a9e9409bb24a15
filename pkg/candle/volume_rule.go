package candle

import "fmt"

// VolumeRule closes a bar once cumulative traded size since reset
// reaches the configured threshold. The triggering trade is included in
// the bar it completes, and any overshoot is discarded on reset rather
// than carried into the next window.
type VolumeRule struct {
	threshold float64
	cum       float64
}

// NewVolumeRule creates a VolumeRule. The threshold must be positive.
func NewVolumeRule(threshold float64) (*VolumeRule, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("volume rule threshold must be positive, got %v", threshold)
	}

	return &VolumeRule{threshold: threshold}, nil
}

// ShouldClose accrues the trade's size and reports whether the threshold
// has been reached.
func (r *VolumeRule) ShouldClose(t Trade) bool {
	if finite(t.Size()) {
		r.cum += t.Size()
	}
	return r.cum >= r.threshold
}

// Reset zeroes the cumulative volume.
func (r *VolumeRule) Reset() { r.cum = 0 }

// Policy includes the triggering trade in the closing bar.
func (r *VolumeRule) Policy() TriggerPolicy { return IncludeTrigger }
