// SPDX-License-Identifier: EPL-2.0

package noisewatch_test

import (
	"fmt"

	"github.com/ik5/noisewatch/analyze"
	"github.com/ik5/noisewatch/internal/audiotest"
	"github.com/ik5/noisewatch/monitor"
)

// Replay one second of steady noise through the loudness pipeline and
// inspect what it recorded.
func Example() {
	store := monitor.NewStore()
	recorder := monitor.NewRecorder(store)

	analyzer := analyze.New(recorder, monitor.DefaultConfig())

	// One second of constant 0.2 amplitude: RMS 0.2, loudness 40.
	src := audiotest.NewConstantSource(8000, 1, 8000, 0.2)

	cycles, err := analyzer.Run(src)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("cycles:", cycles)

	for _, rec := range store.Snapshot() {
		fmt.Println("recorded level:", rec.Level)
	}

	// Output:
	// cycles: 1
	// recorded level: 40
}
