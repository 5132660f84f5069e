package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 0.7, cfg.Scheduler.CostPressureRatio)
	assert.Equal(t, 0.0, cfg.Canary.ExperimentalFraction)
	assert.False(t, cfg.Chaos.Enabled)
	assert.Equal(t, 0.95, cfg.Evaluator.PassThreshold)
	assert.Equal(t, "default", cfg.DefaultTenant)
}

func TestInitializeMergesUserConfig(t *testing.T) {
	dir := t.TempDir()
	yaml := `
default_tenant: acme
queue:
  worker_count: 2
  lease_ttl: 30s
  heartbeat_interval: 5s
canary:
  experimental_fraction: 0.5
  window_size: 10
scheduler:
  upgrade_after_repairs: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "metabuild.yaml"), []byte(yaml), 0o600))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.DefaultTenant)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 30*time.Second, cfg.Queue.LeaseTTL)
	assert.Equal(t, 0.5, cfg.Canary.ExperimentalFraction)
	assert.Equal(t, 10, cfg.Canary.WindowSize)
	assert.Equal(t, 3, cfg.Scheduler.UpgradeAfterRepairs)
	// Unset values keep defaults.
	assert.Equal(t, 20, cfg.Queue.MaxConcurrentSteps)
	assert.Equal(t, 0.7, cfg.Scheduler.CostPressureRatio)
}

func TestInitializeRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	yaml := `
canary:
  experimental_fraction: 1.5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "metabuild.yaml"), []byte(yaml), 0o600))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "experimental_fraction")
}

func TestInitializeRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "metabuild.yaml"), []byte("queue: ["), 0o600))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
}

func TestExpandEnvTemplates(t *testing.T) {
	t.Setenv("MB_TENANT", "globex")

	out := ExpandEnv([]byte("default_tenant: {{.MB_TENANT}}"))
	assert.Equal(t, "default_tenant: globex", string(out))

	// Literal $ passes through untouched.
	out = ExpandEnv([]byte(`deny_paths: ["secrets/$env"]`))
	assert.Equal(t, `deny_paths: ["secrets/$env"]`, string(out))

	// Missing variables expand to empty string.
	out = ExpandEnv([]byte("x: {{.MB_DOES_NOT_EXIST}}"))
	assert.Equal(t, "x: ", string(out))
}
