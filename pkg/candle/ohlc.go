package candle

// Open retains the price of the first trade since reset and ignores
// every trade after it.
type Open struct {
	price float64
	set   bool
}

// Update sets the open price on the first valid trade.
func (o *Open) Update(t Trade) {
	if o.set || !finite(t.Price()) {
		return
	}
	o.price = t.Price()
	o.set = true
}

// Reset clears the open price.
func (o *Open) Reset() {
	o.price = 0
	o.set = false
}

// Value returns the open price, or 0 before the first trade.
func (o *Open) Value() float64 { return o.price }

// High tracks the running maximum trade price.
type High struct {
	price float64
	set   bool
}

// Update raises the high water mark if the trade price exceeds it.
func (h *High) Update(t Trade) {
	if !finite(t.Price()) {
		return
	}
	if !h.set || t.Price() > h.price {
		h.price = t.Price()
		h.set = true
	}
}

// Reset clears the high price.
func (h *High) Reset() {
	h.price = 0
	h.set = false
}

// Value returns the highest observed price, or 0 before the first trade.
func (h *High) Value() float64 { return h.price }

// Low tracks the running minimum trade price.
type Low struct {
	price float64
	set   bool
}

// Update lowers the low water mark if the trade price undercuts it.
func (l *Low) Update(t Trade) {
	if !finite(t.Price()) {
		return
	}
	if !l.set || t.Price() < l.price {
		l.price = t.Price()
		l.set = true
	}
}

// Reset clears the low price.
func (l *Low) Reset() {
	l.price = 0
	l.set = false
}

// Value returns the lowest observed price, or 0 before the first trade.
func (l *Low) Value() float64 { return l.price }

// Close is overwritten by every trade's price and therefore reflects
// the last trade before reset.
type Close struct {
	price float64
}

// Update records the latest trade price.
func (c *Close) Update(t Trade) {
	if !finite(t.Price()) {
		return
	}
	c.price = t.Price()
}

// Reset clears the close price.
func (c *Close) Reset() { c.price = 0 }

// Value returns the latest observed price.
func (c *Close) Value() float64 { return c.price }

// Volume is the running sum of trade sizes.
type Volume struct {
	sum float64
}

// Update adds the trade size to the cumulative volume.
func (v *Volume) Update(t Trade) {
	if !finite(t.Size()) {
		return
	}
	v.sum += t.Size()
}

// Reset zeroes the cumulative volume.
func (v *Volume) Reset() { v.sum = 0 }

// Value returns the cumulative volume.
func (v *Volume) Value() float64 { return v.sum }

// NumTrades counts trades since reset.
type NumTrades struct {
	n int64
}

// Update increments the trade count.
func (n *NumTrades) Update(Trade) { n.n++ }

// Reset zeroes the trade count.
func (n *NumTrades) Reset() { n.n = 0 }

// Value returns the trade count as a float64.
func (n *NumTrades) Value() float64 { return float64(n.n) }

// Count returns the trade count.
func (n *NumTrades) Count() int64 { return n.n }
