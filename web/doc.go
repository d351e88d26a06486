// SPDX-License-Identifier: EPL-2.0

// Package web serves the monitor to browsers: a JSON API over the
// record store and settings, CSV download, the access gate, and a
// websocket feed of live loudness samples and new records.
//
// The package is a read-only consumer of the pipeline. It never
// mutates the store; configuration changes go through
// monitor.Settings and reach the pipeline on its next report cycle.
package web
