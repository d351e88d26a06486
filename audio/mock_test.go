// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// mockSource generates synthetic samples for package-internal tests.
// internal/audiotest provides the exported equivalent for other
// packages; this copy avoids an import cycle.
type mockSource struct {
	sampleRate int
	channels   int
	total      int
	generated  int
	waveform   func(sample, channel int) float32
	closed     bool
}

func newMockSource(sampleRate, channels, total int, waveform func(sample, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate: sampleRate,
		channels:   channels,
		total:      total,
		waveform:   waveform,
	}
}

func newConstantSource(sampleRate, channels, total int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, total, func(int, int) float32 {
		return value
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }

func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
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
