package spool

import (
	"sync/atomic"
)

// Tracker counts live instances of a named object kind, as a leak-debugging
// aid. It is an injectable hook rather than package state: create one per
// tracked type, share it between that type's constructors and destructors,
// and read the count in tests or teardown checks.
type Tracker struct {
	logger *Logger
	name   string
	count  atomic.Int64
}

// NewTracker creates a tracker that reports through logger at fine level.
func NewTracker(logger *Logger, name string) *Tracker {
	return &Tracker{logger: logger, name: name}
}

// Construct records one new live instance.
func (t *Tracker) Construct() {
	n := t.count.Add(1)
	t.logger.Fine("Constructing ", t.name, " (object count now ", n, ")")
}

// Destruct records one released instance.
func (t *Tracker) Destruct() {
	n := t.count.Add(-1)
	t.logger.Fine("Destructing ", t.name, " (object count now ", n, ")")
}

// Count returns the current number of live instances.
func (t *Tracker) Count() int64 {
	return t.count.Load()
}
