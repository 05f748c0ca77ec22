package ports

import (
	"context"
	"time"
)

// Outcome of one strategy comparison, as recorded by the CLI.
// The simulation engine itself never persists anything; records exist so
// benchmark runs can be inspected later.
type ComparisonRecord struct {
	RunID       string
	CreatedAt   time.Time
	StrategyA   string
	StrategyB   string
	TaskCount   int
	ParcelCount int
	Seed        int64
	AverageA    float64
	AverageB    float64
}

// Port: a boundary for storing and retrieving comparison records.
type RunRepository interface {
	// SaveComparison stores one comparison outcome.
	SaveComparison(ctx context.Context, rec ComparisonRecord) error

	// ListComparisons returns all recorded outcomes, newest first.
	ListComparisons(ctx context.Context) ([]ComparisonRecord, error)
}
