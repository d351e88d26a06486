// SPDX-License-Identifier: EPL-2.0

// Package noisewatch is an ambient noise monitor. It samples
// loudness from a microphone (or a recorded file), aggregates the
// samples into report windows, and keeps a bounded history of the
// windows that crossed a configurable threshold.
//
// The pipeline packages:
//
//   - capture: microphone input via PortAudio
//   - audio / formats: decoders for replaying recordings
//   - monitor: sampler, aggregator, recorder, store, scheduler
//   - analyze: drives the monitor pipeline over a recording
//   - chart: normalized projection of stored records
//   - export: CSV history export and WAV event clips
//   - gate: the access-code prompt in front of the web view
//   - web: HTTP/JSON API and live websocket feed
//
// The root package ties the decoders together: Open returns a playable
// audio.Source for any supported file.
package noisewatch
