package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/spoolkit/spool"
)

// GnetAdapter wraps a spool.Logger to implement gnet's logging.Logger interface
type GnetAdapter struct {
	logger       *spool.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *spool.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at fine level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Append(spool.LevelFine, "gnet: "+fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Append(spool.LevelInfo, "gnet: "+fmt.Sprintf(format, args...))
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Append(spool.LevelWarn, "gnet: "+fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Append(spool.LevelError, "gnet: "+fmt.Sprintf(format, args...))
}

// Fatalf logs at error level and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Append(spool.LevelError, "gnet: fatal: "+msg)

	// Ensure the line reaches the sink before exit
	_ = a.logger.Flush(100 * time.Millisecond)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
