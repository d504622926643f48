package spool

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the logger's current
// configuration. Each override should be in the format "key=value".
// The configuration is cloned before modification.
//
// Example:
//
//	logger := spool.NewLogger()
//	err := logger.ApplyOverride(
//	    "file=/var/log/app/platform.log",
//	    "level=fine",
//	    "spool_interval_ms=50",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.getConfig().Clone()

	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return l.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("spool: multiple configuration errors:")
	for i, err := range errs {
		errMsg := err.Error()
		// Remove "spool: " prefix from individual errors to avoid duplication
		errMsg = strings.TrimPrefix(errMsg, "spool: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
// This is the core field mapping logic for string overrides.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "level":
		// Accept both numeric and named values
		if numVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.Level = numVal
		} else {
			levelVal, err := ParseLevel(value)
			if err != nil {
				return fmtErrorf("invalid level value '%s': %w", value, err)
			}
			cfg.Level = levelVal
		}

	case "file":
		cfg.File = value
	case "console_target":
		cfg.ConsoleTarget = value
	case "origin_tag":
		cfg.OriginTag = value
	case "timestamp_format":
		cfg.TimestampFormat = value

	case "indent_width":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for indent_width '%s': %w", value, err)
		}
		cfg.IndentWidth = intVal

	case "spool_interval_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for spool_interval_ms '%s': %w", value, err)
		}
		cfg.SpoolIntervalMs = intVal

	case "shutdown_wait_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for shutdown_wait_ms '%s': %w", value, err)
		}
		cfg.ShutdownWaitMs = intVal

	case "lock_wait_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for lock_wait_ms '%s': %w", value, err)
		}
		cfg.LockWaitMs = intVal

	case "heartbeat_interval_s":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for heartbeat_interval_s '%s': %w", value, err)
		}
		cfg.HeartbeatIntervalS = intVal

	default:
		return fmtErrorf("unknown config key: %s", key)
	}

	return nil
}
