package spool

import (
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Logger is the facade over the spool pipeline. It holds the severity
// threshold, owns the buffer, sink, and spooler, and drives their lifecycle.
// Create one per process and hand it to the components that need it; the
// package deliberately has no hidden global instance.
type Logger struct {
	currentConfig atomic.Value // stores *Config
	formatter     atomic.Value // stores *lineFormatter
	threshold     atomic.Int64

	buf   *lineBuffer
	sink  *sinkWriter
	spool *spooler

	initMu         sync.Mutex // serializes configuration changes
	shutdownCalled atomic.Bool
	startTime      time.Time
}

// NewLogger creates a logger with default settings and starts its spooler.
// Exactly one spooler exists per Logger for its entire lifetime.
func NewLogger() *Logger {
	l := &Logger{
		buf:       newLineBuffer(),
		sink:      newSinkWriter(os.Stdout),
		startTime: time.Now(),
	}

	cfg := DefaultConfig()
	l.currentConfig.Store(cfg)
	l.threshold.Store(cfg.Level)
	l.formatter.Store(newLineFormatter(cfg.TimestampFormat, cfg.OriginTag, int(cfg.IndentWidth)))

	l.spool = newSpooler(l.buf, l.sink, l.heartbeatLine)
	go l.spool.run(cfg.spoolSettings())

	return l
}

// ApplyConfig applies a validated configuration to the logger.
// This is the primary way applications should configure the logger.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	l.currentConfig.Store(cfg.Clone())
	l.threshold.Store(cfg.Level)
	l.formatter.Store(newLineFormatter(cfg.TimestampFormat, cfg.OriginTag, int(cfg.IndentWidth)))

	if cfg.ConsoleTarget == "stderr" {
		l.sink.setConsole(os.Stderr)
	} else {
		l.sink.setConsole(os.Stdout)
	}
	// A path that cannot be opened silently leaves the console fallback in
	// place; sink failures are never surfaced to callers.
	l.sink.setTarget(cfg.File)

	l.spool.apply(cfg.spoolSettings())

	return nil
}

// Configure points the sink at path (empty selects the console) and sets the
// severity threshold. Convenience over ApplyConfig for the common pair.
func (l *Logger) Configure(path string, level int64) error {
	cfg := l.getConfig().Clone()
	cfg.File = path
	cfg.Level = level
	return l.ApplyConfig(cfg)
}

// SetLevel changes the severity threshold without touching the sink.
func (l *Logger) SetLevel(level int64) error {
	cfg := l.getConfig().Clone()
	cfg.Level = level
	return l.ApplyConfig(cfg)
}

// SetOutput redirects the sink to path, closing any previously open handle.
// An empty path selects the console fallback.
func (l *Logger) SetOutput(path string) error {
	cfg := l.getConfig().Clone()
	cfg.File = path
	return l.ApplyConfig(cfg)
}

// GetConfig returns a copy of the current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// Log formats the values at the given level and buffers the resulting line.
// Disabled calls return after the threshold comparison and do no other work.
func (l *Logger) Log(level int64, args ...any) {
	l.log(level, args)
}

// Error logs the values at error level.
func (l *Logger) Error(args ...any) {
	l.log(LevelError, args)
}

// Warn logs the values at warning level.
func (l *Logger) Warn(args ...any) {
	l.log(LevelWarn, args)
}

// Info logs the values at info level.
func (l *Logger) Info(args ...any) {
	l.log(LevelInfo, args)
}

// Fine logs the values at fine level.
func (l *Logger) Fine(args ...any) {
	l.log(LevelFine, args)
}

// Trace logs the values at trace level.
func (l *Logger) Trace(args ...any) {
	l.log(LevelTrace, args)
}

// Append adds a single pre-built message at the given level. Intended for
// cross-boundary callers that hold a finished string rather than values.
// LevelOff and out-of-range levels are ignored.
func (l *Logger) Append(level int64, message string) {
	switch level {
	case LevelError, LevelWarn, LevelInfo, LevelFine, LevelTrace, LevelAll:
		l.log(level, []any{message})
	}
}

// Flush asks the spooler for an immediate drain and waits for confirmation.
func (l *Logger) Flush(timeout time.Duration) error {
	if l.shutdownCalled.Load() {
		return fmtErrorf("logger already shut down")
	}
	return l.spool.flush(timeout)
}

// Shutdown tears the logger down: it disables further logging, signals the
// spooler to stop, waits a bounded time for the final drain acknowledgment,
// then performs one best-effort flush of whatever remains and closes the
// sink. The spooler goroutine is never joined; if it fails to acknowledge in
// time it is abandoned. Safe to call more than once.
func (l *Logger) Shutdown(timeout ...time.Duration) error {
	if !l.shutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	// Switch off logging now, to avoid complications.
	l.threshold.Store(LevelOff)

	cfg := l.getConfig()
	wait := time.Duration(cfg.ShutdownWaitMs) * time.Millisecond
	if len(timeout) > 0 {
		wait = timeout[0]
	}

	l.spool.requestStop()

	deadline := time.Now().Add(wait)
	acknowledged := false
	for time.Now().Before(deadline) {
		if l.spool.stopped() {
			acknowledged = true
			break
		}
		time.Sleep(minWaitTime)
	}

	// Best-effort flush of anything still buffered. Try a bounded lock
	// acquire first; on timeout proceed without the lock rather than hang.
	// By this point no producers are expected to be active.
	var remainder []string
	lockWait := time.Duration(cfg.LockWaitMs) * time.Millisecond
	if l.buf.lockTimeout(lockWait) {
		remainder = l.buf.drainLocked()
		l.buf.unlock()
	} else {
		remainder = l.buf.takeUnlocked()
	}
	if len(remainder) > 0 {
		l.sink.writeBatch(remainder)
	}

	finalErr := l.sink.close()
	if !acknowledged {
		finalErr = combineErrors(finalErr, fmtErrorf("spooler did not acknowledge shutdown within %v", wait))
	}
	return finalErr
}

// log is the single recording path. The line is formatted while holding the
// buffer lock, because the indentation depth is part of the line.
func (l *Logger) log(level int64, args []any) {
	if l.shutdownCalled.Load() {
		return
	}
	// LevelOff is never a valid call level; a threshold of LevelOff rejects
	// every real level through the comparison alone.
	if level <= LevelOff || level > l.threshold.Load() {
		return
	}

	f := l.getFormatter()
	now := time.Now()
	l.buf.push(func(depth int) string {
		return f.line(now, level, depth, args)
	})
}

// heartbeatLine builds the periodic spooler heartbeat record, or returns ""
// when fine-level output is currently suppressed.
func (l *Logger) heartbeatLine() string {
	if l.shutdownCalled.Load() || LevelFine > l.threshold.Load() {
		return ""
	}
	f := l.getFormatter()
	uptime := time.Since(l.startTime).Round(time.Second)
	return f.line(time.Now(), LevelFine, 0, []any{
		"spool heartbeat: spooled=", l.spool.spooled.Load(),
		" drains=", l.spool.drains.Load(),
		" buffered=", l.buf.size(),
		" uptime=", uptime,
	})
}

func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

func (l *Logger) getFormatter() *lineFormatter {
	return l.formatter.Load().(*lineFormatter)
}
