// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"testing"
)

type nopDecoder struct{}

func (nopDecoder) Decode(io.Reader) (Source, error) { return nil, nil }

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", nopDecoder{})

	if _, ok := reg.Get("wav"); !ok {
		t.Error("Get(\"wav\") = false, want registered decoder")
	}

	if _, ok := reg.Get("flac"); ok {
		t.Error("Get(\"flac\") = true, want false for unregistered format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", nopDecoder{})
	reg.Register("wav", nopDecoder{})

	if got := len(reg.Formats()); got != 1 {
		t.Errorf("Formats() length = %d, want 1 after overwrite", got)
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", nopDecoder{})
	reg.Register("mp3", nopDecoder{})
	reg.Register("ogg", nopDecoder{})

	got := reg.Formats()
	slices.Sort(got)

	want := []string{"mp3", "ogg", "wav"}
	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}
