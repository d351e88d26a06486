// SPDX-License-Identifier: EPL-2.0

package monitor

import "sync"

// Record is one noise event: a window maximum that exceeded the
// threshold at the time it was observed. Records are immutable once
// created.
type Record struct {
	// ID is the creation timestamp in milliseconds. IDs are strictly
	// increasing, so they double as identity and sort key.
	ID int64 `json:"id"`
	// Label is the calendar date the event was recorded on.
	Label string `json:"label"`
	// Level is the loudness that triggered the event, rounded to two
	// decimal places.
	Level float64 `json:"level"`
}

// Store holds recorded noise events in insertion order. It is bounded:
// when an insertion pushes the size past the configured capacity, the
// record with the lowest level is evicted (ties broken by lowest ID,
// i.e. the oldest). Capacity zero means unbounded.
//
// Only the Recorder mutates the Store; chart, CSV and web consumers
// read copied snapshots, so reads are safe from any goroutine.
type Store struct {
	mtx     sync.Mutex
	records []Record
}

func NewStore() *Store {
	return &Store{}
}

// Append adds a record and enforces the capacity bound, evicting at
// most one record. The eviction scan is linear; capacity is a small
// UI-facing limit, so simplicity wins over an index here.
func (s *Store) Append(rec Record, capacity int) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.records = append(s.records, rec)

	if capacity <= 0 || len(s.records) <= capacity {
		return
	}

	minIdx := 0
	for i, r := range s.records[1:] {
		if r.Level < s.records[minIdx].Level {
			minIdx = i + 1
		}
	}

	s.records = append(s.records[:minIdx], s.records[minIdx+1:]...)
}

// Snapshot returns a copy of the stored records in insertion order.
func (s *Store) Snapshot() []Record {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)

	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return len(s.records)
}
