// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding for noise replay.
//
// This package uses github.com/go-audio/wav to parse WAV files and
// exposes them as an audio.Source so recordings can be run through the
// offline analyzer exactly like live input.
//
// # Supported Formats
//
// The decoder supports:
//   - WAV (RIFF/WAVE), PCM 16-bit
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("recording.wav")
//	src, err := decoder.Decode(file)
//
// Non-seekable readers are buffered in memory before parsing, since
// the underlying chunk walker requires seeking.
package wav
