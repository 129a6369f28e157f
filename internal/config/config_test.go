package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"llcsim/internal/replacement"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llcsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sets: 64
assoc: 8
policy: DRRIP
seed: 7
trace_path: /tmp/trace.txt
step: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.Sets)
	require.Equal(t, 8, cfg.Assoc)
	require.Equal(t, "DRRIP", cfg.Policy)
	require.EqualValues(t, 7, cfg.Seed)
	require.Equal(t, "/tmp/trace.txt", cfg.TracePath)
	require.True(t, cfg.Step)
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	cfg := Default()
	cfg.TracePath = "trace.txt"
	cfg.Sets = 0
	_, err := cfg.Validate()
	require.Error(t, err)
}

func TestValidateRejectsUnknownPolicy(t *testing.T) {
	cfg := Default()
	cfg.TracePath = "trace.txt"
	cfg.Policy = "NOT-A-POLICY"
	_, err := cfg.Validate()
	require.Error(t, err)
}

func TestValidateRejectsMissingTrace(t *testing.T) {
	cfg := Default()
	_, err := cfg.Validate()
	require.Error(t, err)
}

func TestValidateAccepts(t *testing.T) {
	cfg := Default()
	cfg.TracePath = "trace.txt"
	policy, err := cfg.Validate()
	require.NoError(t, err)
	require.Equal(t, replacement.PolicySRRIP, policy)
}
