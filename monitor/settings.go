// SPDX-License-Identifier: EPL-2.0

package monitor

import "sync"

// Step sizes for the operator-facing adjustments.
const (
	ThresholdStep = 1.0
	YAxisMaxStep  = 5.0
	CapacityStep  = 10
)

// Config holds the operator-adjustable pipeline parameters. A Config
// value is passed into each report cycle and each projection; there is
// no hidden global state.
type Config struct {
	// Threshold is the loudness a window maximum must exceed to be
	// recorded. Non-negative.
	Threshold float64 `json:"threshold"`
	// YAxisMax is the top of the chart range. Must stay above
	// Threshold for projection to be meaningful.
	YAxisMax float64 `json:"yAxisMax"`
	// RecordCapacity bounds the store. Zero means unbounded.
	RecordCapacity int `json:"recordCapacity"`
}

// DefaultConfig returns the monitor's starting configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:      15,
		YAxisMax:       50,
		RecordCapacity: 50,
	}
}

// Settings is a mutex-guarded Config holder. Adjustments apply
// immediately to the held value but only reach the pipeline on the
// next report cycle, when the scheduler takes a fresh Snapshot.
type Settings struct {
	mtx sync.Mutex
	cfg Config
}

func NewSettings(cfg Config) *Settings {
	return &Settings{cfg: cfg}
}

// Snapshot returns the current configuration by value.
func (s *Settings) Snapshot() Config {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.cfg
}

// IncThreshold raises the threshold by one.
func (s *Settings) IncThreshold() Config {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.cfg.Threshold += ThresholdStep

	return s.cfg
}

// DecThreshold lowers the threshold by one, not below zero.
func (s *Settings) DecThreshold() Config {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.cfg.Threshold -= ThresholdStep
	if s.cfg.Threshold < 0 {
		s.cfg.Threshold = 0
	}

	return s.cfg
}

// IncYAxisMax raises the chart ceiling by five.
func (s *Settings) IncYAxisMax() Config {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.cfg.YAxisMax += YAxisMaxStep

	return s.cfg
}

// DecYAxisMax lowers the chart ceiling by five. The step is rejected
// once it would bring the ceiling to threshold+1 or below, keeping the
// projection range valid.
func (s *Settings) DecYAxisMax() (Config, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.cfg.YAxisMax-YAxisMaxStep <= s.cfg.Threshold+1 {
		return s.cfg, ErrStepRejected
	}

	s.cfg.YAxisMax -= YAxisMaxStep

	return s.cfg, nil
}

// IncCapacity raises the record capacity by ten.
func (s *Settings) IncCapacity() Config {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.cfg.RecordCapacity += CapacityStep

	return s.cfg
}

// DecCapacity lowers the record capacity by ten, not below zero.
func (s *Settings) DecCapacity() Config {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.cfg.RecordCapacity -= CapacityStep
	if s.cfg.RecordCapacity < 0 {
		s.cfg.RecordCapacity = 0
	}

	return s.cfg
}

// SetUnbounded removes the record capacity bound.
func (s *Settings) SetUnbounded() Config {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.cfg.RecordCapacity = 0

	return s.cfg
}
