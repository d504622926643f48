package spool

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/spoolkit/spool/sanitizer"
)

// lineFormatter converts a severity level, timestamp, indentation depth, and a
// sequence of values into one finished log line. Instances are immutable after
// construction, so the logger can share one across producers and swap it
// atomically on reconfiguration.
type lineFormatter struct {
	timestampFormat string
	originTag       string
	indent          string // spaces emitted per indentation level
	sanitizer       *sanitizer.Sanitizer
}

// newLineFormatter creates a formatter for the given layout settings
func newLineFormatter(timestampFormat, originTag string, indentWidth int) *lineFormatter {
	if timestampFormat == "" {
		timestampFormat = "2006-01-02 15:04:05.000000"
	}
	if originTag == "" {
		originTag = "P"
	}
	if indentWidth <= 0 {
		indentWidth = 4
	}
	return &lineFormatter{
		timestampFormat: timestampFormat,
		originTag:       originTag,
		indent:          strings.Repeat(" ", indentWidth),
		sanitizer:       sanitizer.NewWithPolicy(sanitizer.PolicyLine),
	}
}

// line builds a complete record: timestamp, origin tag, severity label,
// indentation, then all values concatenated. Embedded line breaks are removed
// so the output stays one line per record. Never fails.
func (f *lineFormatter) line(ts time.Time, level int64, depth int, args []any) string {
	buf := make([]byte, 0, 128)
	buf = ts.UTC().AppendFormat(buf, f.timestampFormat)
	buf = append(buf, ' ')
	buf = append(buf, f.originTag...)
	buf = append(buf, ' ')
	buf = append(buf, levelLabel(level)...)
	for i := 0; i < depth; i++ {
		buf = append(buf, f.indent...)
	}

	msg := make([]byte, 0, 64)
	for _, arg := range args {
		msg = appendValue(msg, arg, f.timestampFormat)
	}
	buf = append(buf, f.sanitizer.Sanitize(string(msg))...)

	return string(buf)
}

// levelLabel maps a severity to its fixed-width label. LevelAll shares the
// ERROR label; LevelOff and any out-of-range value degrade to the TRACE label
// rather than fail.
func levelLabel(level int64) string {
	switch level {
	case LevelAll, LevelError:
		return "ERROR   "
	case LevelWarn:
		return "WARNING "
	case LevelInfo:
		return "INFO    "
	case LevelFine:
		return "FINE    "
	default:
		return "TRACE   "
	}
}

// appendValue converts a single value to text with allocation-free paths for
// common scalar types, delegating everything else to spew.
func appendValue(buf []byte, v any, timestampFormat string) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, timestampFormat)
	case time.Duration:
		return append(buf, val.String()...)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		// Structs, maps, pointers, slices: delegate to spew for a compact,
		// deterministic dump.
		var b bytes.Buffer
		dumper := &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		dumper.Fdump(&b, val)
		return append(buf, bytes.TrimSpace(b.Bytes())...)
	}
}
