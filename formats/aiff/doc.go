// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding for noise replay.
//
// This package uses github.com/go-audio/aiff to parse AIFF files and
// exposes them as an audio.Source for the offline analyzer. Only
// 16-bit PCM is supported.
package aiff
