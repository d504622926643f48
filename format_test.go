package spool

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		name  string
		level int64
		want  string
	}{
		{"error", LevelError, "ERROR   "},
		{"warn", LevelWarn, "WARNING "},
		{"info", LevelInfo, "INFO    "},
		{"fine", LevelFine, "FINE    "},
		{"trace", LevelTrace, "TRACE   "},
		{"all shares error label", LevelAll, "ERROR   "},
		{"off degrades to trace label", LevelOff, "TRACE   "},
		{"out of range degrades to trace label", 99, "TRACE   "},
		{"negative degrades to trace label", -3, "TRACE   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levelLabel(tt.level))
			assert.Len(t, levelLabel(tt.level), 8)
		})
	}
}

func TestLineLayout(t *testing.T) {
	f := newLineFormatter("2006-01-02 15:04:05.000000", "P", 4)
	ts := time.Date(2024, 3, 15, 10, 30, 0, 123456000, time.UTC)

	line := f.line(ts, LevelInfo, 0, []any{"hello ", "world"})

	assert.Equal(t, "2024-03-15 10:30:00.123456 P INFO    hello world", line)
}

func TestLineIndentation(t *testing.T) {
	f := newLineFormatter("15:04:05", "P", 4)
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	depth0 := f.line(ts, LevelFine, 0, []any{"x"})
	depth1 := f.line(ts, LevelFine, 1, []any{"x"})
	depth2 := f.line(ts, LevelFine, 2, []any{"x"})

	assert.Equal(t, "00:00:00 P FINE    x", depth0)
	assert.Equal(t, "00:00:00 P FINE        x", depth1)
	assert.Equal(t, "00:00:00 P FINE            x", depth2)
}

func TestLineValueConcatenation(t *testing.T) {
	f := newLineFormatter("15:04:05", "P", 4)
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Values are concatenated with no separator, stream style
	line := f.line(ts, LevelInfo, 0, []any{"count=", 42, " ok=", true, " ratio=", 0.5})
	assert.True(t, strings.HasSuffix(line, "count=42 ok=true ratio=0.5"), line)
}

func TestLineStripsNewlines(t *testing.T) {
	f := newLineFormatter("15:04:05", "P", 4)
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	line := f.line(ts, LevelInfo, 0, []any{"first\nsecond\r\nthird"})

	assert.NotContains(t, line, "\n")
	assert.NotContains(t, line, "\r")
	assert.Contains(t, line, "firstsecondthird")
}

func TestLineIdempotent(t *testing.T) {
	f := newLineFormatter("15:04:05", "P", 4)
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	args := []any{"stable ", 7, " ", errors.New("boom")}

	first := f.line(ts, LevelWarn, 1, args)
	second := f.line(ts, LevelWarn, 1, args)

	assert.Equal(t, first, second)
}

func TestAppendValueTypes(t *testing.T) {
	layout := "15:04:05"
	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "text", "text"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"uint", uint(3), "3"},
		{"uint64", uint64(9), "9"},
		{"float32", float32(1.5), "1.5"},
		{"float64", 2.25, "2.25"},
		{"bool", false, "false"},
		{"nil", nil, "nil"},
		{"time", when, "03:04:05"},
		{"duration", 1500 * time.Millisecond, "1.5s"},
		{"error", errors.New("kaput"), "kaput"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(appendValue(nil, tt.value, layout))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppendValueSpewFallback(t *testing.T) {
	type payload struct {
		ID   int
		Name string
	}

	got := string(appendValue(nil, payload{ID: 1, Name: "n"}, "15:04:05"))

	// Non-scalar values go through spew, which includes type information
	assert.Contains(t, got, "payload")
	assert.Contains(t, got, "ID")
	require.NotEmpty(t, got)
}

func TestFormatterDefaults(t *testing.T) {
	f := newLineFormatter("", "", 0)

	assert.Equal(t, "2006-01-02 15:04:05.000000", f.timestampFormat)
	assert.Equal(t, "P", f.originTag)
	assert.Equal(t, "    ", f.indent)
}

func TestLineTimestampIsUTC(t *testing.T) {
	f := newLineFormatter("2006-01-02 15:04:05", "P", 4)
	zone := time.FixedZone("TEST", 3*3600)
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, zone)

	line := f.line(ts, LevelInfo, 0, []any{"m"})

	assert.True(t, strings.HasPrefix(line, "2024-01-01 09:00:00"), line)
}
