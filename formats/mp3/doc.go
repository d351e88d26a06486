// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding for noise replay.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3
// recordings and exposes them as an audio.Source for the offline
// analyzer.
//
// # Decoding
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("recording.mp3")
//	src, err := decoder.Decode(file)
//
// The decoder always produces two interleaved channels; mix through
// audio.MonoMixer before loudness analysis.
package mp3
