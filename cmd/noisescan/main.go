// SPDX-License-Identifier: EPL-2.0

// noisescan replays a recording through the loudness pipeline and
// prints the noise events it finds as CSV.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	noisewatch "github.com/ik5/noisewatch"
	"github.com/ik5/noisewatch/analyze"
	"github.com/ik5/noisewatch/export"
	"github.com/ik5/noisewatch/monitor"
)

func main() {
	var (
		threshold = flag.Float64("threshold", 0, "noise threshold (0 uses the default)")
		capacity  = flag.Int("capacity", 0, "record capacity, 0 for unbounded")
	)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <recording>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger, flag.Arg(0), *threshold, *capacity); err != nil {
		logger.Error("noisescan failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, path string, threshold float64, capacity int) error {
	cfg := monitor.DefaultConfig()
	if threshold > 0 {
		cfg.Threshold = threshold
	}

	cfg.RecordCapacity = capacity

	src, err := noisewatch.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	store := monitor.NewStore()

	analyzer := analyze.New(monitor.NewRecorder(store), cfg)

	cycles, err := analyzer.Run(src)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", path, err)
	}

	records := store.Snapshot()

	logger.Info("scan finished",
		"path", path,
		"cycles", cycles,
		"events", len(records),
		"threshold", cfg.Threshold,
	)

	if len(records) == 0 {
		return nil
	}

	return export.WriteCSV(os.Stdout, records)
}
