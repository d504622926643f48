package spool

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionNesting(t *testing.T) {
	logger, path := createTestLogger(t)

	logger.EnterSection("X", LevelInfo)
	logger.Info("inside X")
	logger.EnterSection("Y", LevelInfo)
	logger.Info("inside Y")
	logger.ExitSection(LevelInfo)
	logger.ExitSection(LevelInfo)
	logger.Info("back at top level")

	// Both sections exited: depth must be back at zero
	assert.Zero(t, logger.buf.depth)

	require.NoError(t, logger.Shutdown(time.Second))

	lines := readLogLines(t, path)
	require.Len(t, lines, 9)

	assert.True(t, strings.HasSuffix(lines[0], "INFO    X"))
	assert.True(t, strings.HasSuffix(lines[1], "INFO    {"))
	assert.True(t, strings.HasSuffix(lines[2], "INFO        inside X"))
	assert.True(t, strings.HasSuffix(lines[3], "INFO        Y"))
	assert.True(t, strings.HasSuffix(lines[4], "INFO        {"))
	// Y's contents are one level deeper than X's
	assert.True(t, strings.HasSuffix(lines[5], "INFO            inside Y"))
	assert.True(t, strings.HasSuffix(lines[6], "INFO        }"))
	assert.True(t, strings.HasSuffix(lines[7], "INFO    }"))
	assert.True(t, strings.HasSuffix(lines[8], "INFO    back at top level"))
}

func TestSectionClosure(t *testing.T) {
	logger, path := createTestLogger(t)

	func() {
		defer logger.Section("scoped", LevelInfo)()
		logger.Info("inside")
	}()

	assert.Zero(t, logger.buf.depth)

	require.NoError(t, logger.Shutdown(time.Second))

	lines := readLogLines(t, path)
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[0], "scoped"))
	assert.True(t, strings.HasSuffix(lines[1], "{"))
	assert.True(t, strings.HasSuffix(lines[2], "    inside"))
	assert.True(t, strings.HasSuffix(lines[3], "}"))
}

func TestSectionIndentsEvenWhenSuppressed(t *testing.T) {
	logger := createIdleLogger(t)
	require.NoError(t, logger.SetLevel(LevelInfo))

	// Markers at a suppressed level produce no lines, but the depth still
	// moves: pairing is the caller's responsibility, not the threshold's.
	logger.EnterSection("quiet", LevelTrace)
	assert.Zero(t, logger.buf.size())
	assert.Equal(t, 1, logger.buf.depth)

	logger.Info("indented anyway")
	logger.ExitSection(LevelTrace)

	assert.Zero(t, logger.buf.depth)
	lines := logger.buf.drainAll()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "    indented anyway")
}
