// SPDX-License-Identifier: EPL-2.0

package monitor

import "testing"

func TestAggregator_MaxOfWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []float64
		want    float64
	}{
		{"empty window", nil, 0},
		{"single sample", []float64{7.5}, 7.5},
		{"increasing", []float64{1, 2, 3, 4}, 4},
		{"decreasing", []float64{9, 3, 1}, 9},
		{"max in middle", []float64{2, 41.3, 8}, 41.3},
		{"all zero", []float64{0, 0, 0}, 0},
		{"repeated max", []float64{5, 5, 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			agg := NewAggregator()
			for _, s := range tt.samples {
				agg.Observe(s)
			}

			if got := agg.ConsumeAndReset(); got != tt.want {
				t.Errorf("ConsumeAndReset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregator_ResetsAfterConsume(t *testing.T) {
	t.Parallel()

	agg := NewAggregator()
	agg.Observe(42)

	if got := agg.ConsumeAndReset(); got != 42 {
		t.Fatalf("first ConsumeAndReset() = %v, want 42", got)
	}

	// The aggregator must read zero immediately after consumption.
	if got := agg.ConsumeAndReset(); got != 0 {
		t.Errorf("second ConsumeAndReset() = %v, want 0", got)
	}
}

func TestAggregator_WindowsAreIndependent(t *testing.T) {
	t.Parallel()

	agg := NewAggregator()

	agg.Observe(30)
	agg.ConsumeAndReset()

	// A lower sample in the next window must not be shadowed by the
	// previous window's maximum.
	agg.Observe(10)

	if got := agg.ConsumeAndReset(); got != 10 {
		t.Errorf("ConsumeAndReset() = %v, want 10", got)
	}
}
