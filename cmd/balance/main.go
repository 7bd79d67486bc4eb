package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/matchday/internal/balance"
)

const defaultRunTimeout = 10 * time.Minute

func main() {
	var (
		matches = flag.Int("matches", balance.DefaultMatches, "Number of matches to simulate")
		workers = flag.Int("workers", 0, "Number of simulation workers (default CPU cores)")
		seed    = flag.Int64("seed", 0, "Master seed (default: current time)")
		stadium = flag.Int("stadium", balance.DefaultStadiumLevel, "Home stadium level")
		output  = flag.String("output", "", "Write every result to this JSON file")
		logFile = flag.String("log", "", "Copy log output to this file")
		verbose = flag.Bool("verbose", false, "Log every invariant violation")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		balance.ShowHelp()
		return
	}

	closer, err := balance.SetupLogging(*logFile)
	if err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer closer.Close()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &balance.Config{
		Matches:      *matches,
		Workers:      *workers,
		Seed:         *seed,
		StadiumLevel: *stadium,
		OutputFile:   *output,
		LogFile:      *logFile,
		Verbose:      *verbose,
	}

	if _, err := balance.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Balance run failed: " + err.Error() + "\n")
		cancel()
		closer.Close()
		os.Exit(1)
	}
}
