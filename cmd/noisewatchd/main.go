// SPDX-License-Identifier: EPL-2.0

// noisewatchd listens on the default microphone, records noise events
// above the configured threshold and serves the monitor web API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ik5/noisewatch/capture"
	"github.com/ik5/noisewatch/export"
	"github.com/ik5/noisewatch/gate"
	"github.com/ik5/noisewatch/monitor"
	"github.com/ik5/noisewatch/web"
)

const shutdownGrace = 5 * time.Second

// clipLength is how much trailing audio is kept per noise event.
const clipLength = 2 * time.Second

func main() {
	var (
		listen    = flag.String("listen", ":8080", "HTTP listen address")
		code      = flag.String("code", "2040", "access code for the web gate")
		threshold = flag.Float64("threshold", 0, "initial noise threshold (0 uses the default)")
		capacity  = flag.Int("capacity", -1, "initial record capacity, 0 for unbounded (-1 uses the default)")
		clipDir   = flag.String("clip-dir", "", "directory for per-event WAV clips (empty disables)")
		verbose   = flag.Bool("verbose", false, "debug logging")
	)

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *listen, *code, *threshold, *capacity, *clipDir); err != nil {
		logger.Error("noisewatchd failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, listen, code string, threshold float64, capacity int, clipDir string) error {
	cfg := monitor.DefaultConfig()
	if threshold > 0 {
		cfg.Threshold = threshold
	}

	if capacity >= 0 {
		cfg.RecordCapacity = capacity
	}

	mic, err := capture.Open()
	if errors.Is(err, capture.ErrDeviceUnavailable) {
		// No point retrying: without an input there is nothing to
		// monitor.
		return fmt.Errorf("cannot start monitoring: %w", err)
	}

	if err != nil {
		return fmt.Errorf("opening microphone: %w", err)
	}
	defer mic.Close()

	sampler, err := monitor.NewSampler(mic)
	if err != nil {
		return fmt.Errorf("building sampler: %w", err)
	}

	store := monitor.NewStore()
	recorder := monitor.NewRecorder(store)
	settings := monitor.NewSettings(cfg)

	sched := monitor.NewScheduler(sampler, monitor.NewAggregator(), recorder, settings)

	server := web.NewServer(store, settings, sched, gate.New(code), logger)

	sched.OnSample = func(level float64) {
		server.PushLevel(level, sched.Active())
	}

	recorder.OnRecord = func(rec monitor.Record) {
		logger.Info("noise event", "id", rec.ID, "level", rec.Level)
		server.PushRecord(rec)

		if clipDir != "" {
			writeEventClip(logger, mic, clipDir, rec)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sched.Run(ctx)

	httpSrv := &http.Server{
		Addr:    listen,
		Handler: server.Handler(),
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("listening", "addr", listen)

		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}

		errCh <- nil
	}()

	select {
	case err := <-errCh:
		stop()
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	return <-errCh
}

func writeEventClip(logger *slog.Logger, mic *capture.Mic, dir string, rec monitor.Record) {
	samples := mic.Recent(clipLength)

	path := filepath.Join(dir, fmt.Sprintf("event-%d.wav", rec.ID))

	f, err := os.Create(path)
	if err != nil {
		logger.Warn("creating event clip", "path", path, "error", err)
		return
	}
	defer f.Close()

	if err := export.WriteClip(f, mic.SampleRate(), samples); err != nil {
		logger.Warn("writing event clip", "path", path, "error", err)
		return
	}

	logger.Debug("event clip written", "path", path)
}
