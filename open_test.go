// SPDX-License-Identifier: EPL-2.0

package noisewatch_test

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	noisewatch "github.com/ik5/noisewatch"
	"github.com/ik5/noisewatch/audio"
	"github.com/ik5/noisewatch/export"
)

func TestOpen_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := noisewatch.Open("recording.flac")
	if !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("Open(.flac) error = %v, want ErrUnknownFormat", err)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := noisewatch.Open(filepath.Join(t.TempDir(), "nope.wav"))
	if err == nil {
		t.Error("Open() on a missing file returned no error")
	}
}

func TestOpen_Wav(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tone.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating recording: %v", err)
	}

	samples := make([]float32, 800)
	for i := range samples {
		samples[i] = 0.5
	}

	if err := export.WriteClip(f, 8000, samples); err != nil {
		t.Fatalf("writing recording: %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("closing recording: %v", err)
	}

	src, err := noisewatch.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if got := src.SampleRate(); got != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", got)
	}

	buf := make([]float32, len(samples))

	n, err := src.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples: %v", err)
	}

	if n != len(samples) {
		t.Errorf("ReadSamples() = %d, want %d", n, len(samples))
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	got := noisewatch.Registry().Formats()
	sort.Strings(got)

	want := []string{"aif", "aiff", "mp3", "oga", "ogg", "wav"}
	if len(got) != len(want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Formats() = %v, want %v", got, want)
		}
	}
}
