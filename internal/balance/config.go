package balance

import "time"

// Config holds configuration for a balance run.
type Config struct {
	Matches      int    // number of matches to simulate
	Workers      int    // simulation workers; < 1 uses the CPU count
	Seed         int64  // master seed; every match seed is drawn from it
	StadiumLevel int    // home stadium level, drives home advantage
	OutputFile   string // optional JSON dump of every result
	LogFile      string // optional copy of the log output
	Verbose      bool   // log every violation
}

// Stats holds run statistics.
type Stats struct {
	Matches    int
	HomeWins   int
	Draws      int
	AwayWins   int
	Goals      int
	Cards      int
	Injuries   int
	Subs       int
	Violations int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

func (s *Stats) rate(n int) float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(n) / float64(s.Matches) * PercentageMultiplier
}

// HomeWinRate is the share of home wins in percent.
func (s *Stats) HomeWinRate() float64 { return s.rate(s.HomeWins) }

// DrawRate is the share of draws in percent.
func (s *Stats) DrawRate() float64 { return s.rate(s.Draws) }

// AwayWinRate is the share of away wins in percent.
func (s *Stats) AwayWinRate() float64 { return s.rate(s.AwayWins) }

// AverageGoals is goals per match.
func (s *Stats) AverageGoals() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.Goals) / float64(s.Matches)
}
