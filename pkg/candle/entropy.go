package candle

import "math"

// Entropy is the running binary Shannon entropy of the aggressor-side
// sequence, in bits. It is 0 while only one side has traded and reaches
// exactly 1.0 when buy and sell counts are equal.
type Entropy struct {
	buys  int64
	sells int64
}

// Update counts the trade's aggressor side.
func (e *Entropy) Update(t Trade) {
	if t.Side() == SideBuy {
		e.buys++
	} else {
		e.sells++
	}
}

// Reset zeroes both side counts.
func (e *Entropy) Reset() {
	e.buys = 0
	e.sells = 0
}

// Value returns -sum(p*log2(p)) over the two observed side frequencies.
func (e *Entropy) Value() float64 {
	total := e.buys + e.sells
	if total == 0 || e.buys == 0 || e.sells == 0 {
		return 0
	}

	pBuy := float64(e.buys) / float64(total)
	pSell := float64(e.sells) / float64(total)
	return -(pBuy*math.Log2(pBuy) + pSell*math.Log2(pSell))
}
