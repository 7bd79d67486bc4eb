package balance

import (
	"fmt"
	"io"
	"os"

	"github.com/okian/matchday/pkg/logger"
)

const logFilePermission = 0o600

// SetupLogging initializes the global logger on stdout, teeing into logFile
// when one is given. The returned closer releases the file.
func SetupLogging(logFile string) (io.Closer, error) {
	if logFile == "" {
		return io.NopCloser(nil), logger.Init()
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	if err := logger.InitWithWriter(io.MultiWriter(os.Stdout, file)); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return file, nil
}

// ShowHelp prints usage information for the balance tool.
func ShowHelp() {
	os.Stdout.WriteString(`Matchday Balance Tool
=====================

Simulates many matches between two identical squads on the worker pool,
checks every result against the match invariants and reports the outcome
distribution.

Usage:
  go run ./cmd/balance [options]

Options:
  -matches int
        Number of matches to simulate (default 1000)
  -workers int
        Number of simulation workers (default CPU cores)
  -seed int
        Master seed (default: current time)
  -stadium int
        Home stadium level (default 1)
  -output string
        Write every result to this JSON file
  -log string
        Copy log output to this file
  -verbose
        Log every invariant violation
  -help
        Show this help message

Examples:
  # Quick check with a fixed seed
  go run ./cmd/balance -matches 5000 -seed 42

  # Measure home advantage at a big stadium
  go run ./cmd/balance -stadium 10 -matches 20000
`)
}
