// SPDX-License-Identifier: EPL-2.0

package capture

import "errors"

var (
	// ErrDeviceUnavailable indicates no usable audio input: missing
	// backend, no device, or permission denied. Fatal to the pipeline;
	// surfaced once at startup, never retried automatically.
	ErrDeviceUnavailable = errors.New("audio input device unavailable")
)
