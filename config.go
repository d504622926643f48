package spool

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values
type Config struct {
	// Severity threshold; calls above it do negligible work
	Level int64 `toml:"level"`

	// Sink target: path opened for append, or "" for the console fallback
	File string `toml:"file"`

	// Console fallback stream, "stdout" or "stderr"
	ConsoleTarget string `toml:"console_target"`

	// Line layout
	OriginTag       string `toml:"origin_tag"`       // Fixed tag after the timestamp, e.g. "P" for platform
	TimestampFormat string `toml:"timestamp_format"` // Go time layout, rendered in UTC
	IndentWidth     int64  `toml:"indent_width"`     // Spaces per section nesting level

	// Timers
	SpoolIntervalMs    int64 `toml:"spool_interval_ms"`    // Period between spooler drain passes
	ShutdownWaitMs     int64 `toml:"shutdown_wait_ms"`     // Bound on waiting for spooler acknowledgment
	LockWaitMs         int64 `toml:"lock_wait_ms"`         // Bound on the final-flush lock acquire
	HeartbeatIntervalS int64 `toml:"heartbeat_interval_s"` // Spooler heartbeat period, 0=disabled
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level:         LevelInfo,
	File:          "",
	ConsoleTarget: "stdout",

	OriginTag:       "P",
	TimestampFormat: "2006-01-02 15:04:05.000000",
	IndentWidth:     4,

	SpoolIntervalMs:    defaultSpoolInterval.Milliseconds(),
	ShutdownWaitMs:     defaultShutdownWait.Milliseconds(),
	LockWaitMs:         defaultLockWait.Milliseconds(),
	HeartbeatIntervalS: 0,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// spoolSettings derives the live spooler parameters
func (c *Config) spoolSettings() spoolSettings {
	return spoolSettings{
		interval:  time.Duration(c.SpoolIntervalMs) * time.Millisecond,
		heartbeat: time.Duration(c.HeartbeatIntervalS) * time.Second,
	}
}

// NewConfigFromFile loads configuration from a TOML file and returns a
// validated Config. A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct("spool.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "spool.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig copies loader values into cfg using the toml tags as keys
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Keep the default
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue assigns a loader value with type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Level < LevelOff || c.Level > LevelAll {
		return fmtErrorf("level must be between %d (off) and %d (all): %d", LevelOff, LevelAll, c.Level)
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	if strings.TrimSpace(c.OriginTag) == "" {
		return fmtErrorf("origin_tag cannot be empty")
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	if c.IndentWidth <= 0 || c.IndentWidth > 16 {
		return fmtErrorf("indent_width must be between 1 and 16: %d", c.IndentWidth)
	}

	if c.SpoolIntervalMs <= 0 || c.ShutdownWaitMs <= 0 || c.LockWaitMs <= 0 {
		return fmtErrorf("interval settings must be positive")
	}

	if c.HeartbeatIntervalS < 0 {
		return fmtErrorf("heartbeat_interval_s cannot be negative: %d", c.HeartbeatIntervalS)
	}

	return nil
}
