package spool

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	cfg, err := NewBuilder().Config()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestBuilderChaining(t *testing.T) {
	cfg, err := NewBuilder().
		Level(LevelTrace).
		File("/tmp/platform.log").
		ConsoleTarget("stderr").
		OriginTag("M").
		TimestampFormat("15:04:05").
		IndentWidth(2).
		SpoolIntervalMs(50).
		ShutdownWaitMs(500).
		HeartbeatIntervalS(5).
		Config()
	require.NoError(t, err)

	assert.Equal(t, LevelTrace, cfg.Level)
	assert.Equal(t, "/tmp/platform.log", cfg.File)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)
	assert.Equal(t, "M", cfg.OriginTag)
	assert.Equal(t, "15:04:05", cfg.TimestampFormat)
	assert.Equal(t, int64(2), cfg.IndentWidth)
	assert.Equal(t, int64(50), cfg.SpoolIntervalMs)
	assert.Equal(t, int64(500), cfg.ShutdownWaitMs)
	assert.Equal(t, int64(5), cfg.HeartbeatIntervalS)
}

func TestBuilderLevelString(t *testing.T) {
	cfg, err := NewBuilder().LevelString("fine").Config()
	require.NoError(t, err)
	assert.Equal(t, LevelFine, cfg.Level)
}

func TestBuilderLevelStringError(t *testing.T) {
	b := NewBuilder().LevelString("loud")

	_, err := b.Config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level string")

	// The accumulated error also blocks Build
	_, err = b.Build()
	require.Error(t, err)
}

func TestBuilderErrorSticks(t *testing.T) {
	// A later valid call must not clear an earlier error
	_, err := NewBuilder().LevelString("bogus").LevelString("info").Config()
	require.Error(t, err)
}

func TestBuilderConfigRejectsInvalid(t *testing.T) {
	_, err := NewBuilder().IndentWidth(0).Config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent_width")
}

func TestBuilderBuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "built.log")

	logger, err := NewBuilder().
		Level(LevelTrace).
		File(path).
		SpoolIntervalMs(10).
		Build()
	require.NoError(t, err)

	logger.Info("built and running")
	require.NoError(t, logger.Shutdown(time.Second))

	lines := readLogLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "built and running")
}

func TestBuilderBuildInvalidConfig(t *testing.T) {
	logger, err := NewBuilder().ConsoleTarget("teletype").Build()
	require.Error(t, err)
	assert.Nil(t, logger)
}
