// SPDX-License-Identifier: EPL-2.0

// Package capture acquires the live microphone through portaudio and
// exposes it as the monitor's input boundary.
//
// The device is opened exactly once, before the pipeline starts; a
// failure to open is fatal to monitoring and is reported once, not per
// sample. Audio arrives on the portaudio callback thread and is copied
// into a ring of recent samples; the sampler takes non-blocking
// snapshots of that ring, so no blocking call ever happens inside a
// monitoring cycle.
//
//	mic, err := capture.Open()
//	if errors.Is(err, capture.ErrDeviceUnavailable) {
//	    // tell the user once and do not start the monitor
//	}
//	defer mic.Close()
package capture
