// SPDX-License-Identifier: EPL-2.0

package capture

import "sync"

// ring is a fixed-size circular buffer of recent samples. The
// portaudio callback writes into it and never blocks: when the ring
// is full the oldest samples are overwritten, because a stale sample
// is worthless to a live loudness monitor.
type ring struct {
	mtx  sync.Mutex
	buf  []float32
	head int // next write position
	size int // valid samples, <= len(buf)
}

func newRing(capacity int) *ring {
	return &ring{buf: make([]float32, capacity)}
}

func (r *ring) write(samples []float32) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, s := range samples {
		r.buf[r.head] = s
		r.head = (r.head + 1) % len(r.buf)

		if r.size < len(r.buf) {
			r.size++
		}
	}
}

// snapshot copies the newest len(dst) samples into dst, oldest first,
// and returns how many were copied. It does not consume anything;
// consecutive snapshots of a quiet stream see the same data.
func (r *ring) snapshot(dst []float32) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	n := len(dst)
	if n > r.size {
		n = r.size
	}

	start := (r.head - n + len(r.buf)) % len(r.buf)
	for i := range n {
		dst[i] = r.buf[(start+i)%len(r.buf)]
	}

	return n
}

// recent returns a copy of up to n of the newest samples, oldest
// first.
func (r *ring) recent(n int) []float32 {
	if n <= 0 {
		return nil
	}

	out := make([]float32, n)
	m := r.snapshot(out)

	return out[:m]
}
