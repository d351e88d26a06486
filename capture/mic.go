// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
)

const (
	// DefaultSampleRate for the input stream.
	DefaultSampleRate = 44100

	// framesPerBuffer matches the monitor's sample window, so each
	// callback delivers one full snapshot worth of audio.
	framesPerBuffer = 1024

	// ringDepth is how much recent audio stays available for
	// snapshots and event clips.
	ringDepth = 5 * time.Second
)

// Mic is the live microphone boundary. It acquires the default input
// device once, keeps a ring of recent mono samples filled by the
// portaudio callback, and serves non-blocking snapshots to the
// sampler. It implements monitor.Input.
type Mic struct {
	stream     *portaudio.Stream
	ring       *ring
	sampleRate int

	closeOnce sync.Once
	closeErr  error
}

// Open acquires the default microphone. This is the one-time setup
// step gating pipeline start: on any failure (no backend, no device,
// permission denied) it returns an error wrapping
// ErrDeviceUnavailable and the cycles must not start. There is no
// automatic retry.
func Open() (*Mic, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: initializing portaudio: %v", ErrDeviceUnavailable, err)
	}

	m := &Mic{
		ring:       newRing(DefaultSampleRate * int(ringDepth/time.Second)),
		sampleRate: DefaultSampleRate,
	}

	stream, err := portaudio.OpenDefaultStream(1, 0, float64(DefaultSampleRate), framesPerBuffer, m.onAudio)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: opening input stream: %v", ErrDeviceUnavailable, err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()

		return nil, fmt.Errorf("%w: starting input stream: %v", ErrDeviceUnavailable, err)
	}

	m.stream = stream

	return m, nil
}

// onAudio runs on the portaudio callback thread; it must only copy.
func (m *Mic) onAudio(in []float32) {
	m.ring.write(in)
}

// Snapshot fills dst with the newest available samples. Never blocks.
func (m *Mic) Snapshot(dst []float32) (int, error) {
	return m.ring.snapshot(dst), nil
}

// Recent returns a copy of up to d of the newest captured audio,
// oldest first. Used for writing event clips.
func (m *Mic) Recent(d time.Duration) []float32 {
	n := int(float64(m.sampleRate) * d.Seconds())

	return m.ring.recent(n)
}

// SampleRate of the input stream in Hz.
func (m *Mic) SampleRate() int {
	return m.sampleRate
}

// Close stops the stream and releases the device. Idempotent; pairs
// with the scheduler's context cancellation to form a full teardown.
func (m *Mic) Close() error {
	m.closeOnce.Do(func() {
		if m.stream != nil {
			if err := m.stream.Stop(); err != nil {
				m.closeErr = fmt.Errorf("stopping input stream: %w", err)
			}

			if err := m.stream.Close(); err != nil && m.closeErr == nil {
				m.closeErr = fmt.Errorf("closing input stream: %w", err)
			}
		}

		if err := portaudio.Terminate(); err != nil && m.closeErr == nil {
			m.closeErr = fmt.Errorf("terminating portaudio: %w", err)
		}
	})

	return m.closeErr
}
