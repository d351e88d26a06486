// SPDX-License-Identifier: EPL-2.0

// Package monitor implements the ambient noise monitoring pipeline.
//
// The pipeline has four stages wired together by a two-rate scheduler:
//
//	Input -> Sampler -> Aggregator -> Recorder -> Store
//
// Every fast tick (200ms) the Sampler reads a snapshot of recent
// amplitudes from its Input, reduces it to a single loudness value
// (scaled RMS, clamped), and feeds it to the Aggregator, which tracks
// the maximum seen in the current window. Every report tick (1s) the
// Scheduler consumes the window maximum and hands it to the Recorder,
// which appends a Record to the Store when the maximum exceeds the
// configured threshold. The Store is bounded: when an insertion
// breaches capacity, the record with the lowest level is evicted.
//
// # Loudness proxy
//
// Loudness is the RMS of a fixed window of time-domain samples, scaled
// by a fixed gain and clamped to a ceiling. It is a relative proxy for
// how loud the room is, not a calibrated decibel measurement.
//
// # Concurrency
//
// One goroutine (the Scheduler's Run loop) owns the Sampler, the
// Aggregator and the ordering of Store mutations; Observe and
// ConsumeAndReset are never called concurrently. Surfaces that cross
// goroutines are explicit: the active pulse flag is atomic, Settings
// and the Store guard reads with a mutex and hand out copies.
//
// # Usage
//
//	mic, err := capture.Open()
//	if err != nil {
//	    // device unavailable: the pipeline must not start
//	}
//	defer mic.Close()
//
//	sampler, _ := monitor.NewSampler(mic)
//	settings := monitor.NewSettings(monitor.DefaultConfig())
//	store := monitor.NewStore()
//	rec := monitor.NewRecorder(store)
//
//	sched := monitor.NewScheduler(sampler, monitor.NewAggregator(), rec, settings)
//	sched.Run(ctx) // blocks until ctx is cancelled
package monitor
