// SPDX-License-Identifier: EPL-2.0

package noisewatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/noisewatch/audio"
	"github.com/ik5/noisewatch/formats/aiff"
	"github.com/ik5/noisewatch/formats/mp3"
	"github.com/ik5/noisewatch/formats/vorbis"
	"github.com/ik5/noisewatch/formats/wav"
)

// Registry holds every built-in decoder, keyed by file extension.
func Registry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

type fileSource struct {
	audio.Source
	f *os.File
}

func (fs *fileSource) Close() error {
	if err := fs.Source.Close(); err != nil {
		fs.f.Close()
		return err
	}

	return fs.f.Close()
}

// Open opens a recording and picks a decoder by file extension. The
// returned Source owns the underlying file and releases it on Close.
func Open(path string) (audio.Source, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dec, ok := Registry().Get(ext)
	if !ok {
		return nil, fmt.Errorf("%q: %w", ext, audio.ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recording: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}
