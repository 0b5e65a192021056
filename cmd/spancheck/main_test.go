package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/span-compare/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) { //nolint:paralleltest
	metricsFile := filepath.Join(t.TempDir(), "spancheck.prom")

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_OUTPUT", "stderr")
	ctx = envutil.WithEnvOverride(ctx, "SPANCHECK_ITERATIONS", "500")
	ctx = envutil.WithEnvOverride(ctx, "SPANCHECK_WORKERS", "2")
	ctx = envutil.WithEnvOverride(ctx, "SPANCHECK_CASES", "../../crosscheck/testdata/cases.yaml")
	ctx = envutil.WithEnvOverride(ctx, "SPANCHECK_METRICS_FILE", metricsFile)

	require.Equal(t, 0, run(ctx))

	metrics, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `spancheck_comparisons_total{path="memory"} 1000`)
}

func TestRun_BadConfig(t *testing.T) { //nolint:paralleltest
	ctx := envutil.WithEnvOverride(t.Context(), "LOG_OUTPUT", "stderr")
	ctx = envutil.WithEnvOverride(ctx, "SPANCHECK_WORKERS", "-3")

	assert.Equal(t, exitSetup, run(ctx))

	ctx = envutil.WithEnvOverride(ctx, "SPANCHECK_WORKERS", "1")
	ctx = envutil.WithEnvOverride(ctx, "SPANCHECK_CASES", "does-not-exist.yaml")

	assert.Equal(t, exitSetup, run(ctx))
}
