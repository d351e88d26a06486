// SPDX-License-Identifier: EPL-2.0

package analyze

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/ik5/noisewatch/audio"
	"github.com/ik5/noisewatch/monitor"
)

// Window timing mirrors the live scheduler, expressed in samples
// instead of wall-clock ticks: five loudness samples per one-second
// report window.
const (
	sampleSlice  = 200 * time.Millisecond
	reportWindow = time.Second
)

// Analyzer replays a recording through the loudness pipeline. It
// reuses the live monitor's Aggregator and Recorder, so a recording
// produces exactly the records the live monitor would have produced
// had it listened in real time.
type Analyzer struct {
	agg      *monitor.Aggregator
	recorder *monitor.Recorder
	cfg      monitor.Config
}

// New creates an analyzer reporting into recorder with a fixed
// configuration (offline runs have no operator adjusting settings
// mid-file).
func New(recorder *monitor.Recorder, cfg monitor.Config) *Analyzer {
	return &Analyzer{
		agg:      monitor.NewAggregator(),
		recorder: recorder,
		cfg:      cfg,
	}
}

// Run drains src through the pipeline. Multi-channel sources are
// mixed to mono first. The trailing partial window, if any, is
// reported as a final cycle. Returns the number of report cycles.
func (a *Analyzer) Run(src audio.Source) (int, error) {
	mono := audio.NewMonoMixer(src)

	sliceSamples := int(float64(src.SampleRate()) * sliceSamplesFactor())
	if sliceSamples < 1 {
		sliceSamples = 1
	}

	slicesPerWindow := int(reportWindow / sampleSlice)

	buf := make([]float32, sliceSamples)

	cycles := 0
	sliceCount := 0
	sawAudio := false

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			sawAudio = true

			a.agg.Observe(loudness(buf[:n]))

			sliceCount++
			if sliceCount == slicesPerWindow {
				sliceCount = 0
				cycles++

				a.recorder.ReportCycle(a.agg.ConsumeAndReset(), a.cfg)
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return cycles, fmt.Errorf("reading source: %w", err)
		}
	}

	// Flush the trailing partial window.
	if sawAudio && sliceCount > 0 {
		cycles++

		a.recorder.ReportCycle(a.agg.ConsumeAndReset(), a.cfg)
	}

	return cycles, nil
}

func sliceSamplesFactor() float64 {
	return sampleSlice.Seconds()
}

// loudness is the same proxy the live sampler computes: scaled RMS
// clamped to the ceiling.
func loudness(samples []float32) float64 {
	sum := 0.0
	for _, v := range samples {
		f := float64(v)
		sum += f * f
	}

	rms := math.Sqrt(sum / float64(len(samples)))

	level := rms * monitor.Gain
	if level > monitor.Ceiling {
		level = monitor.Ceiling
	}

	return level
}
