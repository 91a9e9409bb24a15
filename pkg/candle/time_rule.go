package candle

import (
	"fmt"
	"time"
)

// TimeRule closes a bar once the elapsed trade-clock time since the
// window's first trade reaches the configured period. The triggering
// trade opens the next window.
type TimeRule struct {
	period int64 // nanoseconds
	res    Resolution

	start    int64
	armed    bool
	boundary int64
}

// NewTimeRule creates a TimeRule for the given period and timestamp
// resolution. The period must be positive.
func NewTimeRule(period time.Duration, res Resolution) (*TimeRule, error) {
	if period <= 0 {
		return nil, fmt.Errorf("time rule period must be positive, got %s", period)
	}

	return &TimeRule{
		period: period.Nanoseconds(),
		res:    res,
	}, nil
}

// ShouldClose reports whether the period has elapsed. The first call
// since reset seeds the window start with the trade's timestamp and
// never closes, so an empty bar can never be emitted.
func (r *TimeRule) ShouldClose(t Trade) bool {
	ns := r.res.Nanos(t.Timestamp())
	if !r.armed {
		r.start = ns
		r.armed = true
		return false
	}
	if ns-r.start >= r.period {
		r.boundary = r.start + r.period
		return true
	}
	return false
}

// LastBoundary returns the nanosecond edge of the most recently closed
// window. It survives Reset so the emitted bar can be stamped with it.
func (r *TimeRule) LastBoundary() int64 { return r.boundary }

// Reset clears the window start.
func (r *TimeRule) Reset() {
	r.start = 0
	r.armed = false
}

// Policy routes the triggering trade into the next window.
func (r *TimeRule) Policy() TriggerPolicy { return DeferTrigger }

// AlignedTimeRule closes a bar when the trade clock crosses a period
// boundary aligned to the unix epoch, e.g. every exact 15-minute mark,
// regardless of where trades fall within the window.
type AlignedTimeRule struct {
	period int64 // nanoseconds
	res    Resolution

	next     int64
	armed    bool
	boundary int64
}

// NewAlignedTimeRule creates an AlignedTimeRule for the given period and
// timestamp resolution. The period must be positive.
func NewAlignedTimeRule(period time.Duration, res Resolution) (*AlignedTimeRule, error) {
	if period <= 0 {
		return nil, fmt.Errorf("aligned time rule period must be positive, got %s", period)
	}

	return &AlignedTimeRule{
		period: period.Nanoseconds(),
		res:    res,
	}, nil
}

// ShouldClose reports whether the trade lies at or past the next aligned
// boundary. The first call since reset derives that boundary from the
// trade's own timestamp and never closes.
func (r *AlignedTimeRule) ShouldClose(t Trade) bool {
	ns := r.res.Nanos(t.Timestamp())
	if !r.armed {
		r.next = (ns/r.period)*r.period + r.period
		r.armed = true
		return false
	}
	if ns >= r.next {
		r.boundary = r.next
		return true
	}
	return false
}

// LastBoundary returns the aligned nanosecond edge of the most recently
// closed window. It survives Reset so the emitted bar can be stamped
// with it.
func (r *AlignedTimeRule) LastBoundary() int64 { return r.boundary }

// Reset clears the boundary so the next window aligns off its first trade.
func (r *AlignedTimeRule) Reset() {
	r.next = 0
	r.armed = false
}

// Policy routes the triggering trade into the next window.
func (r *AlignedTimeRule) Policy() TriggerPolicy { return DeferTrigger }
