// SPDX-License-Identifier: EPL-2.0

package monitor

import (
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRecorder_BelowThresholdNotRecorded(t *testing.T) {
	t.Parallel()

	store := NewStore()
	rec := NewRecorder(store)
	cfg := Config{Threshold: 15}

	rec.ReportCycle(10, cfg)
	rec.ReportCycle(15, cfg) // equal is not "exceeds"

	if got := store.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0 for maxima at or below threshold", got)
	}
}

func TestRecorder_RecordFields(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 8, 31, 14, 30, 0, 0, time.Local)

	store := NewStore()
	rec := NewRecorder(store)
	rec.now = fixedClock(at)

	rec.ReportCycle(23.456789, Config{Threshold: 15})

	got := store.Snapshot()
	if len(got) != 1 {
		t.Fatalf("Len() = %d, want 1", len(got))
	}

	if got[0].ID != at.UnixMilli() {
		t.Errorf("ID = %d, want %d", got[0].ID, at.UnixMilli())
	}

	if got[0].Label != "2026-08-31" {
		t.Errorf("Label = %q, want %q", got[0].Label, "2026-08-31")
	}

	if got[0].Level != 23.46 {
		t.Errorf("Level = %v, want 23.46 (two decimal places)", got[0].Level)
	}
}

func TestRecorder_IDsStayUnique(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 8, 31, 14, 30, 0, 0, time.Local)

	store := NewStore()
	rec := NewRecorder(store)
	rec.now = fixedClock(at) // every cycle lands in the same millisecond

	cfg := Config{Threshold: 0}
	for range 5 {
		rec.ReportCycle(20, cfg)
	}

	snap := store.Snapshot()
	seen := make(map[int64]bool, len(snap))

	var prev int64

	for i, r := range snap {
		if seen[r.ID] {
			t.Fatalf("duplicate ID %d", r.ID)
		}
		seen[r.ID] = true

		if i > 0 && r.ID <= prev {
			t.Errorf("IDs not increasing: %d after %d", r.ID, prev)
		}
		prev = r.ID
	}
}

func TestRecorder_ConfigAppliesPerCycle(t *testing.T) {
	t.Parallel()

	store := NewStore()
	rec := NewRecorder(store)

	rec.ReportCycle(20, Config{Threshold: 15})
	// Raising the threshold affects the next cycle but never rewrites
	// the record already stored.
	rec.ReportCycle(20, Config{Threshold: 25})

	if got := store.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestRecorder_OnRecordHook(t *testing.T) {
	t.Parallel()

	store := NewStore()
	rec := NewRecorder(store)

	var seen []Record

	rec.OnRecord = func(r Record) { seen = append(seen, r) }

	rec.ReportCycle(10, Config{Threshold: 15}) // no record, no hook
	rec.ReportCycle(30, Config{Threshold: 15})

	if len(seen) != 1 {
		t.Fatalf("hook fired %d times, want 1", len(seen))
	}

	if seen[0].Level != 30 {
		t.Errorf("hook record level = %v, want 30", seen[0].Level)
	}
}
