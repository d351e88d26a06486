// SPDX-License-Identifier: EPL-2.0

package monitor

import (
	"context"
	"sync/atomic"
	"time"
)

// Default cycle timing. Sampling runs five times per report window;
// the pulse is the short-lived "monitor is alive" indicator consumers
// may render.
const (
	DefaultSampleInterval = 200 * time.Millisecond
	DefaultReportInterval = time.Second
	DefaultPulseDuration  = 100 * time.Millisecond
)

// Scheduler drives the two periodic cycles of the pipeline from a
// single goroutine: the fast cycle samples and aggregates, the slow
// cycle consumes the window maximum and reports it. Because one
// goroutine runs both, a report can never consume a sample that was
// observed after it; under load ticks may coalesce or slip, which the
// pipeline tolerates (periodicity is best effort, not real time).
type Scheduler struct {
	sampler  *Sampler
	agg      *Aggregator
	recorder *Recorder
	settings *Settings

	sampleInterval time.Duration
	reportInterval time.Duration
	pulseDuration  time.Duration

	active atomic.Bool

	// OnSample, when set, receives every loudness sample after it is
	// aggregated. The web layer uses it to stream live levels; it has
	// no effect on aggregation. Called from the Run goroutine.
	OnSample func(level float64)
}

// NewScheduler wires the pipeline stages together. The Sampler must
// already be constructed, which guarantees the input device was ready
// before any cycle can start.
func NewScheduler(sampler *Sampler, agg *Aggregator, recorder *Recorder, settings *Settings) *Scheduler {
	return &Scheduler{
		sampler:        sampler,
		agg:            agg,
		recorder:       recorder,
		settings:       settings,
		sampleInterval: DefaultSampleInterval,
		reportInterval: DefaultReportInterval,
		pulseDuration:  DefaultPulseDuration,
	}
}

// SetIntervals overrides the cycle timing. Intended for tests and for
// replaying at other rates; must be called before Run.
func (s *Scheduler) SetIntervals(sample, report, pulse time.Duration) {
	s.sampleInterval = sample
	s.reportInterval = report
	s.pulseDuration = pulse
}

// Active reports whether a sample was taken within the last pulse
// duration. It is an observability signal only; aggregation does not
// depend on it.
func (s *Scheduler) Active() bool {
	return s.active.Load()
}

// Run drives both cycles until ctx is cancelled. It blocks; callers
// run it in its own goroutine. Cancelling ctx stops both tickers
// before Run returns. Closing the input device is the caller's half
// of teardown and must accompany the cancellation.
func (s *Scheduler) Run(ctx context.Context) {
	sampleTick := time.NewTicker(s.sampleInterval)
	defer sampleTick.Stop()

	reportTick := time.NewTicker(s.reportInterval)
	defer reportTick.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-sampleTick.C:
			s.sampleOnce()

		case <-reportTick.C:
			s.recorder.ReportCycle(s.agg.ConsumeAndReset(), s.settings.Snapshot())
		}
	}
}

func (s *Scheduler) sampleOnce() {
	s.active.Store(true)

	level := s.sampler.Sample()
	s.agg.Observe(level)

	if s.OnSample != nil {
		s.OnSample(level)
	}

	time.AfterFunc(s.pulseDuration, func() {
		s.active.Store(false)
	})
}
