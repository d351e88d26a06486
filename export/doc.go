// SPDX-License-Identifier: EPL-2.0

// Package export serializes recorded noise events for consumers
// outside the pipeline: CSV text for copy/download actions and WAV
// clips of the audio around an event. Both operate on read-only
// record snapshots.
package export
