package balance

// Run defaults.
const (
	DefaultMatches      = 1000
	DefaultStadiumLevel = 1
	maxBatch            = 512
)

// PercentageMultiplier turns a fraction into a percentage.
const PercentageMultiplier = 100
