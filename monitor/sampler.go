// SPDX-License-Identifier: EPL-2.0

package monitor

import (
	"fmt"
	"math"
)

const (
	// SampleWindow is the number of recent time-domain samples reduced
	// to one loudness value per fast tick.
	SampleWindow = 1024

	// Gain scales raw RMS (roughly 0..1) into a human-usable range;
	// typical speech and ambient noise land in the tens.
	Gain = 200.0

	// Ceiling caps the loudness proxy to keep runaway inputs bounded.
	Ceiling = 100.0
)

// Input is the live audio boundary the Sampler reads from. Snapshot
// must be non-blocking: it copies the most recent samples available
// rather than waiting for new ones. capture.Mic implements it for the
// default microphone.
type Input interface {
	// Snapshot fills dst with the newest available samples, oldest
	// first, and returns how many were written. It never blocks.
	Snapshot(dst []float32) (int, error)
	// SampleRate of the input stream in Hz.
	SampleRate() int
	// Close releases the input device.
	Close() error
}

// Sampler reduces an Input's recent samples to a single loudness
// value on demand.
type Sampler struct {
	in  Input
	buf []float32
}

// NewSampler wraps a ready Input. A nil Input is a precondition
// violation (the device must be acquired before the pipeline starts)
// and yields ErrNoInput.
func NewSampler(in Input) (*Sampler, error) {
	if in == nil {
		return nil, ErrNoInput
	}

	return &Sampler{
		in:  in,
		buf: make([]float32, SampleWindow),
	}, nil
}

// Sample reads the current snapshot window and returns its loudness:
// RMS scaled by Gain, clamped to [0, Ceiling]. A snapshot error or an
// empty snapshot reads as silence.
func (s *Sampler) Sample() float64 {
	n, err := s.in.Snapshot(s.buf)
	if err != nil || n == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range s.buf[:n] {
		f := float64(v)
		sum += f * f
	}

	rms := math.Sqrt(sum / float64(n))

	level := rms * Gain
	if level > Ceiling {
		level = Ceiling
	}

	return level
}

// Close releases the underlying input device.
func (s *Sampler) Close() error {
	if err := s.in.Close(); err != nil {
		return fmt.Errorf("closing input: %w", err)
	}

	return nil
}
