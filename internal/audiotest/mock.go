// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource generates synthetic PCM for tests. It satisfies
// audio.Source without importing it, to stay usable from any package.
type MockSource struct {
	sampleRate int
	channels   int
	total      int // samples per channel to generate
	generated  int
	waveform   func(sample, channel int) float32
}

// NewMockSource creates a source producing total samples per channel
// from the given waveform function.
func NewMockSource(sampleRate, channels, total int, waveform func(sample, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		total:      total,
		waveform:   waveform,
	}
}

// NewSilentSource generates total samples of silence.
func NewSilentSource(sampleRate, channels, total int) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(int, int) float32 {
		return 0
	})
}

// NewSineSource generates a sine tone at the given frequency.
func NewSineSource(sampleRate, channels, total int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(sample, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource generates a constant amplitude, which makes RMS
// assertions exact: the RMS of a constant signal is the constant.
func NewConstantSource(sampleRate, channels, total int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.total {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.total - m.generated; frames > remaining {
		frames = remaining
	}

	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}

	m.generated += frames

	if m.generated >= m.total {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}

// MockInput is a snapshot-style input for the live pipeline, standing
// in for a microphone. It satisfies monitor.Input without importing
// it.
type MockInput struct {
	Value float32
	Rate  int

	Closed bool
}

// NewMockInput creates an input whose snapshots are a constant
// amplitude.
func NewMockInput(value float32) *MockInput {
	return &MockInput{Value: value, Rate: 44100}
}

func (m *MockInput) Snapshot(dst []float32) (int, error) {
	for i := range dst {
		dst[i] = m.Value
	}

	return len(dst), nil
}

func (m *MockInput) SampleRate() int {
	if m.Rate == 0 {
		return 44100
	}

	return m.Rate
}

func (m *MockInput) Close() error {
	m.Closed = true
	return nil
}
