package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/miti/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "miti.log")
	log, err := New(config.LogConfig{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	log.WithComponent("test").WithCommand("miti ad2bs").Infow("hello", "k", "v")
	log.LogConversion("ad2bs", "2024-05-21", "2081/02/08", nil)
	log.WithError(errors.New("boom")).Warn("careful")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"component":"test"`)
	require.Contains(t, string(data), `"command":"miti ad2bs"`)
	require.Contains(t, string(data), `"output":"2081/02/08"`)
	require.Contains(t, string(data), `"error":"boom"`)
}

func TestNewLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "miti.log")
	log, err := New(config.LogConfig{Level: "warn", Format: "console", File: path})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "shown")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"})
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() { Nop().WithComponent("x").Info("ignored") })
}
