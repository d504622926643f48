package spool

import (
	"time"
)

// Severity levels, ordered from most to least severe.
// A call at level L is recorded only if L <= the logger threshold,
// so a threshold of LevelOff disables everything and LevelAll enables everything.
const (
	LevelOff   int64 = 0
	LevelError int64 = 1
	LevelWarn  int64 = 2
	LevelInfo  int64 = 3
	LevelFine  int64 = 4
	LevelTrace int64 = 5
	LevelAll   int64 = 6
)

// Spooler states. Transitions are one-way: running -> stopping -> stopped.
const (
	workerRunning int32 = iota
	workerStopping
	workerStopped
)

// Timers
const (
	// Minimum wait time used in polling loops throughout the package
	minWaitTime = 10 * time.Millisecond
	// Default period between spooler drain passes
	defaultSpoolInterval = 100 * time.Millisecond
	// Default bound on waiting for the spooler to acknowledge shutdown
	defaultShutdownWait = 2 * time.Second
	// Default bound on acquiring the buffer lock during the final flush
	defaultLockWait = 100 * time.Millisecond
)
