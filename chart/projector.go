// SPDX-License-Identifier: EPL-2.0

package chart

import (
	"errors"

	"github.com/ik5/noisewatch/monitor"
)

// ErrInvalidRange is returned when the chart ceiling does not exceed
// the threshold. It is a configuration problem local to projection:
// stored records are untouched and sampling keeps running.
var ErrInvalidRange = errors.New("yAxisMax must be greater than threshold")

// Point is one record in normalized chart space. X is the record's
// position along the time axis, Y its level within the configured
// range; both are in [0, 1].
type Point struct {
	ID int64   `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Project maps records onto normalized plot coordinates. Levels map
// linearly from [threshold, yAxisMax] to [0, 1]; below-threshold
// levels clamp to 0 and levels above the ceiling clamp to 1. X spreads
// the records across the axis by their ID (timestamp) span.
func Project(records []monitor.Record, threshold, yAxisMax float64) ([]Point, error) {
	if yAxisMax <= threshold {
		return nil, ErrInvalidRange
	}

	if len(records) == 0 {
		return []Point{}, nil
	}

	first := records[0].ID
	last := records[len(records)-1].ID
	span := float64(last - first)

	points := make([]Point, len(records))

	for i, rec := range records {
		x := 0.0
		if span > 0 {
			x = float64(rec.ID-first) / span
		}

		points[i] = Point{
			ID: rec.ID,
			X:  x,
			Y:  normalize(rec.Level, threshold, yAxisMax),
		}
	}

	return points, nil
}

func normalize(level, threshold, yAxisMax float64) float64 {
	if level <= threshold {
		return 0
	}

	y := (level - threshold) / (yAxisMax - threshold)
	if y > 1 {
		y = 1
	}

	return y
}
