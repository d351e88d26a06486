// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteClip writes mono float32 samples as a 16-bit PCM WAV. The
// daemon uses it to keep a short recording of the audio that triggered
// a noise event. ws must be seekable because the WAV encoder patches
// chunk sizes on Close (os.File qualifies).
func WriteClip(ws io.WriteSeeker, sampleRate int, samples []float32) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}

	enc := wav.NewEncoder(ws, sampleRate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}

	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}

		// 32767 for positive max to avoid int16 overflow.
		buf.Data[i] = int(s * 32767.0)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing clip samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing clip: %w", err)
	}

	return nil
}
