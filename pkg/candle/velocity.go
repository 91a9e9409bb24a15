package candle

// TimeVelocity measures how fast the bar filled: trades per second of
// trade-clock time elapsed since the bar's first trade. It needs the
// resolution of incoming timestamps to normalize the span.
type TimeVelocity struct {
	res   Resolution
	start int64
	last  int64
	n     int64
	armed bool
}

// NewTimeVelocity creates a TimeVelocity accumulator for timestamps in
// the given resolution.
func NewTimeVelocity(res Resolution) *TimeVelocity {
	return &TimeVelocity{res: res}
}

// Update records the trade's timestamp and advances the trade count.
func (v *TimeVelocity) Update(t Trade) {
	ns := v.res.Nanos(t.Timestamp())
	if !v.armed {
		v.start = ns
		v.armed = true
	}
	v.last = ns
	v.n++
}

// Reset clears the window span and count.
func (v *TimeVelocity) Reset() {
	v.start = 0
	v.last = 0
	v.n = 0
	v.armed = false
}

// Value returns trades per second over the observed span, or 0 when the
// span is empty (fewer than two distinct timestamps).
func (v *TimeVelocity) Value() float64 {
	span := v.last - v.start
	if !v.armed || span <= 0 {
		return 0
	}
	return float64(v.n) / (float64(span) / 1e9)
}
