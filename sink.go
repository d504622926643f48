package spool

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// consoleSink wraps an io.Writer, atomic value type change workaround
type consoleSink struct {
	w io.Writer
}

// sinkWriter owns the destination for drained lines: an open file handle, or
// a console stream fallback when no file is open. Batches are only ever
// written from the spooler goroutine and the shutdown path, never from
// producers; the handle itself is swapped atomically so reconfiguration does
// not need a lock.
type sinkWriter struct {
	file    atomic.Pointer[os.File]
	console atomic.Value // stores consoleSink
}

func newSinkWriter(console io.Writer) *sinkWriter {
	if console == nil {
		console = os.Stdout
	}
	w := &sinkWriter{}
	w.console.Store(consoleSink{w: console})
	return w
}

// setTarget closes any previously open handle and opens path for append.
// An empty path selects the console. Open failure is silent: subsequent
// writes fall back to the console, because logging must never be allowed to
// fail the host application.
func (w *sinkWriter) setTarget(path string) {
	var file *os.File
	if path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			file = f
		}
	}
	old := w.file.Swap(file)
	if old != nil {
		_ = old.Sync()
		_ = old.Close()
	}
}

// setConsole replaces the fallback stream.
func (w *sinkWriter) setConsole(console io.Writer) {
	if console != nil {
		w.console.Store(consoleSink{w: console})
	}
}

// writeBatch writes each line terminated by a newline, in the order given.
// A failed file write degrades that line to the console without retry and
// logging continues.
func (w *sinkWriter) writeBatch(lines []string) {
	file := w.file.Load()
	console := w.console.Load().(consoleSink).w
	for _, line := range lines {
		if file != nil {
			if _, err := file.WriteString(line + "\n"); err == nil {
				continue
			}
		}
		fmt.Fprintln(console, line)
	}
}

// hasFile reports whether a file handle is currently open.
func (w *sinkWriter) hasFile() bool {
	return w.file.Load() != nil
}

// close syncs and releases the file handle, if any.
func (w *sinkWriter) close() error {
	file := w.file.Swap(nil)
	if file == nil {
		return nil
	}
	var err error
	if syncErr := file.Sync(); syncErr != nil {
		err = fmtErrorf("failed to sync log file '%s': %w", file.Name(), syncErr)
	}
	if closeErr := file.Close(); closeErr != nil {
		err = combineErrors(err, fmtErrorf("failed to close log file '%s': %w", file.Name(), closeErr))
	}
	return err
}
