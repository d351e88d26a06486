// SPDX-License-Identifier: EPL-2.0

// Package chart projects recorded noise events into normalized plot
// coordinates. It is a read-only consumer of the record store: given a
// threshold and a chart ceiling it maps each record's level linearly
// onto [0, 1], never mutating the records.
package chart
