package spool

import (
	"sync"
	"sync/atomic"
	"time"
)

// lineBuffer is the ordered spool of finished log lines. One mutex guards
// both the line slice and the indentation counter: the counter is read while
// a line is being formatted, so the two must move together.
type lineBuffer struct {
	mu      sync.Mutex
	lines   []string
	depth   int
	pending atomic.Int64 // mirror of len(lines), readable without the lock
}

func newLineBuffer() *lineBuffer {
	return &lineBuffer{}
}

// push appends the line produced by format, which receives the current
// indentation depth. The critical section stays short: format only assembles
// bytes, it never performs I/O.
func (b *lineBuffer) push(format func(depth int) string) {
	b.mu.Lock()
	b.lines = append(b.lines, format(b.depth))
	b.pending.Store(int64(len(b.lines)))
	b.mu.Unlock()
}

// drainAll removes and returns the entire contents in one atomic step, so a
// partially-appended state is never exposed to the writer.
func (b *lineBuffer) drainAll() []string {
	b.mu.Lock()
	lines := b.drainLocked()
	b.mu.Unlock()
	return lines
}

// drainLocked removes and returns the contents. Caller must hold the lock.
func (b *lineBuffer) drainLocked() []string {
	lines := b.lines
	b.lines = nil
	b.pending.Store(0)
	return lines
}

// size reports the number of buffered lines without taking the lock.
func (b *lineBuffer) size() int64 {
	return b.pending.Load()
}

// indent and unindent adjust the shared indentation depth. Callers must pair
// them in stack order; the buffer does not correct imbalance.
func (b *lineBuffer) indent() {
	b.mu.Lock()
	b.depth++
	b.mu.Unlock()
}

func (b *lineBuffer) unindent() {
	b.mu.Lock()
	b.depth--
	b.mu.Unlock()
}

// lockTimeout attempts to acquire the buffer lock, polling until the
// deadline. Shutdown uses it so a producer that never releases the lock
// cannot deadlock teardown.
func (b *lineBuffer) lockTimeout(d time.Duration) bool {
	deadline := time.Now().Add(d)
	for {
		if b.mu.TryLock() {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		time.Sleep(minWaitTime)
	}
}

func (b *lineBuffer) unlock() {
	b.mu.Unlock()
}

// takeUnlocked removes whatever is visible without acquiring the lock. Only
// valid during process teardown after the shutdown wait has elapsed, when no
// producers are expected to be active. The race is accepted on that path
// only: hanging on the mutex at exit would be worse than a torn read.
func (b *lineBuffer) takeUnlocked() []string {
	lines := b.lines
	b.lines = nil
	b.pending.Store(0)
	return lines
}
