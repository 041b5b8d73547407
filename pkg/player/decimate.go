// ABOUTME: Fractional frame-skipping decimator
// ABOUTME: Compacts sample chunks in place at a real-valued skip interval
package player

// Decimator drops samples at a fractional interval to reduce the effective
// sample rate without hardware clock support for the exact target rate.
type Decimator struct {
	ratio      float64
	carryPhase bool
	pos        float64
}

// NewDecimator creates a decimator for the given ratio. A ratio <= 1.0
// passes chunks through untouched. With carryPhase the fractional position
// survives chunk boundaries; without it, the position resets every chunk,
// which keeps chunks independent at the cost of a small periodic phase
// error at chunk seams.
func NewDecimator(ratio float64, carryPhase bool) *Decimator {
	return &Decimator{ratio: ratio, carryPhase: carryPhase}
}

// Compact decimates buf in place and returns the number of surviving
// samples. Survivors occupy buf[:n] in source order.
func (d *Decimator) Compact(buf []int16) int {
	n := len(buf)
	if d.ratio <= 1.0 || n == 0 {
		return n
	}

	if !d.carryPhase {
		d.pos = 0
	}

	written := 0
	for d.pos < float64(n) {
		src := int(d.pos)
		if src < n {
			buf[written] = buf[src]
			written++
		}
		d.pos += d.ratio
	}

	if d.carryPhase {
		d.pos -= float64(n)
	}

	return written
}

// Reset clears the fractional position.
func (d *Decimator) Reset() {
	d.pos = 0
}
