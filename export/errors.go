// SPDX-License-Identifier: EPL-2.0

package export

import "errors"

var (
	// ErrNoRecords marks an export action with nothing to export. It
	// is a transient notice for the user, not a pipeline failure.
	ErrNoRecords = errors.New("nothing to export")

	// ErrNoSamples is returned when a clip is written without audio.
	ErrNoSamples = errors.New("no samples for clip")
)
