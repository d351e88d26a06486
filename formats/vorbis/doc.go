// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding for noise replay.
//
// This package uses github.com/jfreymuth/oggvorbis to decode .ogg
// recordings and exposes them as an audio.Source for the offline
// analyzer. Mono and stereo streams at any sample rate are supported.
//
// # Decoding
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("recording.ogg")
//	src, err := decoder.Decode(file)
package vorbis
