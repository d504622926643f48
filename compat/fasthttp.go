package compat

import (
	"fmt"
	"strings"

	"github.com/spoolkit/spool"
)

// FastHTTPAdapter wraps a spool.Logger to implement fasthttp's Logger interface
type FastHTTPAdapter struct {
	logger        *spool.Logger
	defaultLevel  int64
	levelDetector func(string) int64 // Detects severity from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *spool.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  spool.LevelInfo,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the severity used when detection finds nothing
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect severity from message content
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != spool.LevelOff {
			level = detected
		}
	}

	a.logger.Append(level, "fasthttp: "+msg)
}

// DetectLogLevel attempts to detect a severity from message content.
// Returns spool.LevelOff when nothing matches, so callers can fall back.
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return spool.LevelError
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return spool.LevelWarn
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return spool.LevelTrace
	}

	return spool.LevelOff
}
