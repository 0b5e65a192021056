// Command spancheck cross-checks the sequence comparison paths against each
// other and against golden cases. It exits non-zero on any disagreement.
//
// Configuration comes from the environment; see crosscheck.ConfigFromEnv,
// logger.ConfigureLogging and telemetry.LoadConfigFromEnv. When
// SPANCHECK_METRICS_FILE is set the run's counters are written to it in the
// Prometheus text format.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amp-labs/span-compare/crosscheck"
	"github.com/amp-labs/span-compare/envutil"
	"github.com/amp-labs/span-compare/errors"
	"github.com/amp-labs/span-compare/lexicographic"
	"github.com/amp-labs/span-compare/logger"
	"github.com/amp-labs/span-compare/telemetry"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
)

const (
	exitMismatch = 1
	exitSetup    = 2
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)

	cancel()
	os.Exit(code)
}

func run(ctx context.Context) int {
	otelConfig, err := telemetry.LoadConfigFromEnv(logger.WithSubsystem(ctx, "spancheck"),
		envutil.String(ctx, "ENVIRONMENT").ValueOrElse("local"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "spancheck:", err) //nolint:errcheck

		return exitSetup
	}

	if err := telemetry.Initialize(ctx, otelConfig); err != nil {
		fmt.Fprintln(os.Stderr, "spancheck:", err) //nolint:errcheck

		return exitSetup
	}

	defer func() {
		if err := telemetry.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Get(ctx).Warn("telemetry shutdown failed", "error", err)
		}
	}()

	if _, err := logger.ConfigureLogging(ctx, "spancheck",
		logger.WithHandler(telemetry.LogHandler("spancheck"))); err != nil {
		fmt.Fprintln(os.Stderr, "spancheck:", err) //nolint:errcheck

		return exitSetup
	}

	ctx = telemetry.WithTracer(ctx, otel.Tracer("spancheck"))
	ctx = logger.With(ctx, "run_id", uuid.NewString())
	log := logger.Get(ctx)

	cfg, err := crosscheck.ConfigFromEnv(ctx)
	if err != nil {
		log.Error("invalid configuration", "error", err)

		return exitSetup
	}

	reg := prometheus.NewRegistry()

	checker, err := crosscheck.NewChecker(cfg, reg)
	if err != nil {
		log.Error("invalid configuration", "error", err)

		return exitSetup
	}

	log.Info("starting",
		"iterations", cfg.Iterations,
		"max_len", cfg.MaxLen,
		"workers", cfg.Workers,
		"seed", cfg.Seed,
		"fast_path", lexicographic.FastPathEnabled())

	var failures errors.Collection

	if cfg.CasesFile != "" {
		cases, err := crosscheck.LoadCases(cfg.CasesFile)
		if err != nil {
			log.Error("cannot load golden cases", "file", cfg.CasesFile, "error", err)

			return exitSetup
		}

		failures.Add(checker.RunCases(ctx, cases))
	}

	failures.Add(checker.Fuzz(ctx))

	report := checker.Report()
	log.Info("finished", "pairs", report.Pairs, "cases", report.Cases, "mismatches", report.Mismatches)

	if path := envutil.String(ctx, "SPANCHECK_METRICS_FILE").ValueOrElse(""); path != "" {
		if err := prometheus.WriteToTextfile(path, reg); err != nil {
			log.Error("cannot write metrics", "file", path, "error", err)
		}
	}

	if failures.HasError() {
		log.Error("spancheck failed", "error", failures.GetError())

		return exitMismatch
	}

	return 0
}
