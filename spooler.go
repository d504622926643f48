package spool

import (
	"sync"
	"sync/atomic"
	"time"
)

// spoolSettings carries live-reconfigurable spooler parameters
type spoolSettings struct {
	interval  time.Duration
	heartbeat time.Duration // 0 disables the heartbeat
}

// spooler is the single background worker of a Logger. It polls the buffer on
// a fixed period, drains it, and writes the drained batch through the sink
// outside the buffer lock so slow I/O never blocks producers.
//
// Shutdown is cooperative: the owner closes quit, the spooler performs one
// final drain-and-write pass, then marks itself stopped and returns. The
// owner never joins the goroutine; it waits for the stopped state with a
// bounded timeout and abandons the worker if the acknowledgment never comes.
type spooler struct {
	buf    *lineBuffer
	sink   *sinkWriter
	hbLine func() string // returns "" when the heartbeat is suppressed

	quit     chan struct{}
	stopOnce sync.Once
	reconfig chan spoolSettings
	flushReq chan chan struct{}

	state   atomic.Int32 // workerRunning -> workerStopping -> workerStopped
	spooled atomic.Uint64
	drains  atomic.Uint64
}

func newSpooler(buf *lineBuffer, sink *sinkWriter, hbLine func() string) *spooler {
	return &spooler{
		buf:      buf,
		sink:     sink,
		hbLine:   hbLine,
		quit:     make(chan struct{}),
		reconfig: make(chan spoolSettings, 1),
		flushReq: make(chan chan struct{}),
	}
}

// run is the worker loop. It must be started exactly once per Logger.
func (s *spooler) run(initial spoolSettings) {
	s.state.Store(workerRunning)

	interval := initial.interval
	if interval <= 0 {
		interval = defaultSpoolInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var hbTicker *time.Ticker
	var hbChan <-chan time.Time
	if initial.heartbeat > 0 {
		hbTicker = time.NewTicker(initial.heartbeat)
		hbChan = hbTicker.C
	}
	defer func() {
		if hbTicker != nil {
			hbTicker.Stop()
		}
	}()

	for {
		select {
		case <-s.quit:
			// One last drain-and-write pass, then acknowledge and park.
			s.state.Store(workerStopping)
			s.drain()
			s.state.Store(workerStopped)
			return

		case <-ticker.C:
			if s.buf.size() > 0 {
				s.drain()
			}

		case confirm := <-s.flushReq:
			s.drain()
			close(confirm)

		case settings := <-s.reconfig:
			if settings.interval > 0 {
				ticker.Reset(settings.interval)
			}
			if hbTicker != nil {
				hbTicker.Stop()
				hbTicker = nil
				hbChan = nil
			}
			if settings.heartbeat > 0 {
				hbTicker = time.NewTicker(settings.heartbeat)
				hbChan = hbTicker.C
			}

		case <-hbChan:
			if line := s.hbLine(); line != "" {
				s.sink.writeBatch([]string{line})
			}
		}
	}
}

// drain atomically takes the buffered lines and writes them in order.
// The write happens after the buffer lock is released.
func (s *spooler) drain() {
	lines := s.buf.drainAll()
	if len(lines) == 0 {
		return
	}
	s.sink.writeBatch(lines)
	s.spooled.Add(uint64(len(lines)))
	s.drains.Add(1)
}

// requestStop signals the worker to finish. Safe to call more than once.
func (s *spooler) requestStop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
}

// stopped reports whether the worker has acknowledged shutdown.
func (s *spooler) stopped() bool {
	return s.state.Load() == workerStopped
}

// apply forwards new settings to the worker loop. Non-blocking: if the
// worker has already stopped, the settings are dropped.
func (s *spooler) apply(settings spoolSettings) {
	select {
	case s.reconfig <- settings:
	default:
	}
}

// flush asks the worker for an immediate drain and waits for confirmation.
func (s *spooler) flush(timeout time.Duration) error {
	confirm := make(chan struct{})

	select {
	case s.flushReq <- confirm:
	case <-time.After(timeout):
		return fmtErrorf("failed to send flush request to spooler (stopped or busy)")
	}

	select {
	case <-confirm:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}
