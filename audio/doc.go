// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM streaming primitives shared by the
// noisewatch replay pipeline.
//
// The Source interface is the input boundary for recorded audio:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Format decoders (see the formats subpackages) adapt encoded files to
// Source, MonoMixer folds multi-channel streams down to mono, and the
// analyze package drains the result through the same loudness pipeline
// the live monitor uses.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]; 0.0 is silence. The normalized
// range keeps RMS computation independent of the source bit depth.
//
// # Format Registry
//
// The Registry allows decoder lookup by format key:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
//
// The root noisewatch package registers all built-in decoders and
// selects one by file extension.
//
// # Error Handling
//
// ReadSamples returns io.EOF when the stream is exhausted; any other
// error is a source or decode failure:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // process n samples from buf
//	}
package audio
