package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spoolkit/spool"
)

const (
	producers       = 16
	linesPerRoutine = 5000
)

// Concurrency soak: hammers the buffer from many producers and verifies the
// sink received every line after shutdown.
func main() {
	path := "./stress.log"
	_ = os.Remove(path)

	logger, err := spool.NewBuilder().
		Level(spool.LevelTrace).
		File(path).
		SpoolIntervalMs(10).
		HeartbeatIntervalS(1).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < linesPerRoutine; i++ {
				logger.Trace("producer=", p, " seq=", i)
			}
		}(p)
	}
	wg.Wait()

	if err := logger.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown reported: %v\n", err)
	}

	elapsed := time.Since(start)
	total := producers * linesPerRoutine
	fmt.Printf("wrote %d lines in %v (%.0f lines/s)\n",
		total, elapsed, float64(total)/elapsed.Seconds())

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read back failed: %v\n", err)
		os.Exit(1)
	}
	// Heartbeat lines land in the same file; count producer lines only
	count := strings.Count(string(data), " producer=")
	if count != total {
		fmt.Fprintf(os.Stderr, "LOST LINES: expected %d, found %d\n", total, count)
		os.Exit(1)
	}
	fmt.Println("all lines accounted for")
}
