// SPDX-License-Identifier: EPL-2.0

package monitor

// Aggregator tracks the maximum loudness observed in the current
// report window. It is owned by the scheduler goroutine and needs no
// locking: Observe and ConsumeAndReset are only ever called from the
// same Run loop, so a consume can never interleave with an observe.
type Aggregator struct {
	windowMax float64
}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Observe folds a sample into the window maximum. The maximum is
// monotonically non-decreasing within a window and never negative.
func (a *Aggregator) Observe(sample float64) {
	if sample > a.windowMax {
		a.windowMax = sample
	}
}

// ConsumeAndReset returns the current window maximum and resets it to
// zero as a single step, so no sample is lost or double-counted
// between the read and the reset.
func (a *Aggregator) ConsumeAndReset() float64 {
	maxVal := a.windowMax
	a.windowMax = 0

	return maxVal
}
