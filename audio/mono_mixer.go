// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer converts a multi-channel Source to mono by averaging the
// channels of each frame. Loudness analysis is channel-agnostic, so
// every recording is mixed down before it reaches the sampler.
type MonoMixer struct {
	src Source
	tmp []float32
	// rem carries a trailing partial frame when the source returns a
	// sample count that is not frame-aligned; it is consumed first on
	// the next read so no sample is lost mid-stream.
	rem []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing source: %w", err)
	}

	return nil
}

// ReadSamples fills dst with mono samples, one per source frame.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	needed := len(dst) * channels
	if cap(m.tmp) < needed {
		m.tmp = make([]float32, needed)
	}

	m.tmp = m.tmp[:needed]

	carried := copy(m.tmp, m.rem)
	m.rem = m.rem[:0]

	n, err := m.src.ReadSamples(m.tmp[carried:])

	total := carried + n
	if total == 0 {
		return 0, err
	}

	frames := total / channels
	if leftover := total - frames*channels; leftover > 0 {
		m.rem = append(m.rem, m.tmp[frames*channels:total]...)
	}

	inv := 1.0 / float32(channels)

	for f := range frames {
		sum := float32(0)
		base := f * channels

		for c := range channels {
			sum += m.tmp[base+c]
		}

		dst[f] = sum * inv
	}

	return frames, err
}
