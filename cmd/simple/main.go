package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spoolkit/spool"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[spool]
  level = 4 # fine
  file = "./simple.log"
  origin_tag = "P"
  indent_width = 4
  spool_interval_ms = 100
  shutdown_wait_ms = 2000
  # Other settings use package defaults
`

func main() {
	fmt.Println("--- Simple Spool Example ---")

	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := spool.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v. Using defaults.\n", err)
		cfg = spool.DefaultConfig()
	}

	logger := spool.NewLogger()
	if err := logger.ApplyConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting up, threshold=", spool.LevelName(cfg.Level))

	// Scoped regions render visually nested
	done := logger.Section("initialization", spool.LevelInfo)
	logger.Info("loading assets")
	inner := logger.Section("cache warmup", spool.LevelFine)
	logger.Fine("warmed ", 128, " entries in ", 42*time.Millisecond)
	inner()
	done()

	// Cross-boundary single-string variant
	logger.Append(spool.LevelWarn, "message delivered from a bound caller")

	if err := logger.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Shutdown reported: %v\n", err)
	}
	fmt.Println("Done, see ./simple.log")
}
