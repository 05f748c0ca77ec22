package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-sim/internal/platform/obs"
	"courier-sim/internal/ports"
)

// Postgres-backed implementation of the RunRepository port, for teams
// sharing one benchmark history. Same table shape as the SQLite store,
// positional placeholders per the pgx stdlib driver.
type SQLRunRepository struct{ DB *sql.DB }

func NewSQLRunRepository(db *sql.DB) *SQLRunRepository {
	return &SQLRunRepository{DB: db}
}

// Initialize the Postgres run-store schema.
func (s *SQLRunRepository) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("sql run repository: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS comparison_runs (
		run_id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		strategy_a TEXT NOT NULL,
		strategy_b TEXT NOT NULL,
		task_count INTEGER NOT NULL,
		parcel_count INTEGER NOT NULL,
		seed BIGINT NOT NULL,
		avg_a DOUBLE PRECISION NOT NULL,
		avg_b DOUBLE PRECISION NOT NULL
	);
	`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("sql run repository: init schema: %w", err)
	}

	return nil
}

// Store one comparison outcome.
func (s *SQLRunRepository) SaveComparison(ctx context.Context, rec ports.ComparisonRecord) (err error) {
	defer obs.Time(ctx, "runs.sql.SaveComparison")(&err)

	if s.DB == nil {
		return errors.New("sql run repository: DB is nil")
	}

	query := `
	INSERT INTO comparison_runs (
		run_id,
		created_at,
		strategy_a,
		strategy_b,
		task_count,
		parcel_count,
		seed,
		avg_a,
		avg_b
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = s.DB.ExecContext(ctx, query,
		rec.RunID,
		rec.CreatedAt,
		rec.StrategyA,
		rec.StrategyB,
		rec.TaskCount,
		rec.ParcelCount,
		rec.Seed,
		rec.AverageA,
		rec.AverageB,
	)
	if err != nil {
		return fmt.Errorf("save comparison: insert run_id=%s: %w", rec.RunID, err)
	}

	return nil
}

// Return all recorded comparison outcomes, newest first.
func (s *SQLRunRepository) ListComparisons(ctx context.Context) (_ []ports.ComparisonRecord, err error) {
	defer obs.Time(ctx, "runs.sql.ListComparisons")(&err)

	if s.DB == nil {
		return nil, errors.New("sql run repository: DB is nil")
	}

	query := `
	SELECT
		run_id,
		created_at,
		strategy_a,
		strategy_b,
		task_count,
		parcel_count,
		seed,
		avg_a,
		avg_b
	FROM comparison_runs
	ORDER BY created_at DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list comparisons: query comparison_runs table: %w", err)
	}
	defer rows.Close()

	records := make([]ports.ComparisonRecord, 0, 64)
	for rows.Next() {
		var rec ports.ComparisonRecord
		err := rows.Scan(
			&rec.RunID,
			&rec.CreatedAt,
			&rec.StrategyA,
			&rec.StrategyB,
			&rec.TaskCount,
			&rec.ParcelCount,
			&rec.Seed,
			&rec.AverageA,
			&rec.AverageB,
		)
		if err != nil {
			return nil, fmt.Errorf("list comparisons: scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comparisons: row iteration: %w", err)
	}

	return records, nil
}
