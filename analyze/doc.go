// SPDX-License-Identifier: EPL-2.0

// Package analyze replays recorded audio through the noise monitoring
// pipeline without wall-clock timers. Report windows are derived from
// sample counts, so a one-hour recording analyzes in seconds while
// producing the same records live monitoring would have.
package analyze
