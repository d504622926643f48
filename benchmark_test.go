package spool

import (
	"testing"
	"time"
)

func newBenchLogger(b *testing.B) *Logger {
	b.Helper()

	logger := NewLogger()
	cfg := DefaultConfig()
	cfg.File = b.TempDir() + "/bench.log"
	cfg.Level = LevelInfo
	cfg.SpoolIntervalMs = 10
	if err := logger.ApplyConfig(cfg); err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = logger.Shutdown(2 * time.Second) })
	return logger
}

func BenchmarkLog(b *testing.B) {
	logger := newBenchLogger(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark line ", i)
	}
}

func BenchmarkLogSuppressed(b *testing.B) {
	logger := newBenchLogger(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Trace("suppressed line ", i)
	}
}

func BenchmarkLogParallel(b *testing.B) {
	logger := newBenchLogger(b)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			logger.Info("parallel benchmark line")
		}
	})
}

func BenchmarkFormatLine(b *testing.B) {
	f := newLineFormatter("2006-01-02 15:04:05.000000", "P", 4)
	ts := time.Now()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.line(ts, LevelInfo, 1, []any{"value=", i, " status=", true})
	}
}
