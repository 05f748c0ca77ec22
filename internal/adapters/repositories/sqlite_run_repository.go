package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-sim/internal/platform/obs"
	"courier-sim/internal/ports"
)

// SQLite-backed implementation of the RunRepository port. This is the
// default local store for recorded comparison runs.
type SqliteRunRepository struct{ DB *sql.DB }

func NewSqliteRunRepository(db *sql.DB) *SqliteRunRepository {
	return &SqliteRunRepository{DB: db}
}

// Store one comparison outcome.
func (s *SqliteRunRepository) SaveComparison(ctx context.Context, rec ports.ComparisonRecord) (err error) {
	defer obs.Time(ctx, "runs.sqlite.SaveComparison")(&err)

	if s.DB == nil {
		return errors.New("sqlite run repository: DB is nil")
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
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
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
func (s *SqliteRunRepository) ListComparisons(ctx context.Context) (_ []ports.ComparisonRecord, err error) {
	defer obs.Time(ctx, "runs.sqlite.ListComparisons")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite run repository: DB is nil")
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
