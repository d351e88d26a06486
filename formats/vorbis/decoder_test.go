// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// fakeOgg feeds canned interleaved float32 samples.
type fakeOgg struct {
	samples  []float32
	pos      int
	channels int
}

func (f *fakeOgg) SampleRate() int { return 48000 }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(p []float32) (int, error) {
	if f.pos >= len(f.samples) {
		return 0, io.EOF
	}

	n := copy(p, f.samples[f.pos:])
	f.pos += n

	return n, nil
}

func TestSource_ReadsInterleaved(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeOgg{samples: []float32{0.1, 0.2, 0.3, 0.4}, channels: 2},
		sampleRate: 48000,
		channels:   2,
	}

	buf := make([]float32, 4)

	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0.1, 0.2, 0.3, 0.4}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestSource_TruncatesToWholeFrames(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeOgg{samples: []float32{0.1, 0.2, 0.3, 0.4}, channels: 2},
		sampleRate: 48000,
		channels:   2,
	}

	// A 3-sample buffer with 2 channels can only hold one full frame.
	buf := make([]float32, 3)

	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2 (one whole frame)", n)
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeOgg{channels: 1},
		sampleRate: 48000,
		channels:   1,
	}

	buf := make([]float32, 4)

	n, err := src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an ogg"))); err == nil {
		t.Error("Decode(garbage) error = nil, want error")
	}
}
