// SPDX-License-Identifier: EPL-2.0

package monitor

import (
	"math"
	"time"
)

// Recorder turns window maxima into stored Records. It owns all Store
// mutation; everything else sees read-only snapshots.
type Recorder struct {
	store  *Store
	now    func() time.Time
	lastID int64

	// OnRecord, when set, is called after each appended record. The
	// web layer uses it to push events to live clients and the daemon
	// to capture audio clips. Called from the scheduler goroutine.
	OnRecord func(Record)
}

func NewRecorder(store *Store) *Recorder {
	return &Recorder{
		store: store,
		now:   time.Now,
	}
}

// ReportCycle records windowMax as a noise event when it exceeds the
// configured threshold. Configuration is passed in per cycle, so
// operator changes take effect on the next report without rewriting
// stored records. It always succeeds.
func (r *Recorder) ReportCycle(windowMax float64, cfg Config) {
	if windowMax <= cfg.Threshold {
		return
	}

	t := r.now()

	id := t.UnixMilli()
	if id <= r.lastID {
		// Two reports inside one millisecond; IDs must stay unique
		// and increasing.
		id = r.lastID + 1
	}
	r.lastID = id

	rec := Record{
		ID:    id,
		Label: t.Format("2006-01-02"),
		Level: math.Round(windowMax*100) / 100,
	}

	r.store.Append(rec, cfg.RecordCapacity)

	if r.OnRecord != nil {
		r.OnRecord(rec)
	}
}
