package spool

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the built configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()

	// ApplyConfig handles validation and sink/spooler setup.
	if err := logger.ApplyConfig(b.cfg); err != nil {
		// The spooler is already running; park it before reporting failure.
		_ = logger.Shutdown(minWaitTime)
		return nil, err
	}

	return logger, nil
}

// Config returns the accumulated configuration without building a logger.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.validate(); err != nil {
		return nil, err
	}
	return b.cfg.Clone(), nil
}

// Level sets the severity threshold.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the severity threshold from a name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// File sets the sink path. Empty selects the console fallback.
func (b *Builder) File(path string) *Builder {
	b.cfg.File = path
	return b
}

// ConsoleTarget selects the console fallback stream, "stdout" or "stderr".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// OriginTag sets the fixed tag emitted after the timestamp.
func (b *Builder) OriginTag(tag string) *Builder {
	b.cfg.OriginTag = tag
	return b
}

// TimestampFormat sets the timestamp layout.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// IndentWidth sets the spaces emitted per section nesting level.
func (b *Builder) IndentWidth(width int64) *Builder {
	b.cfg.IndentWidth = width
	return b
}

// SpoolIntervalMs sets the spooler drain period.
func (b *Builder) SpoolIntervalMs(ms int64) *Builder {
	b.cfg.SpoolIntervalMs = ms
	return b
}

// ShutdownWaitMs sets the bound on waiting for spooler acknowledgment.
func (b *Builder) ShutdownWaitMs(ms int64) *Builder {
	b.cfg.ShutdownWaitMs = ms
	return b
}

// HeartbeatIntervalS enables the periodic spooler heartbeat.
func (b *Builder) HeartbeatIntervalS(seconds int64) *Builder {
	b.cfg.HeartbeatIntervalS = seconds
	return b
}
