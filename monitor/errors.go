// SPDX-License-Identifier: EPL-2.0

package monitor

import "errors"

var (
	// ErrNoInput is returned when a Sampler is constructed without a
	// ready input device.
	ErrNoInput = errors.New("no audio input available")

	// ErrStepRejected is returned by Settings adjustments that would
	// violate a configuration invariant.
	ErrStepRejected = errors.New("adjustment rejected")
)
