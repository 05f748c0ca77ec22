package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite run-store schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRunsQuery := `
	CREATE TABLE IF NOT EXISTS comparison_runs (
		run_id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		strategy_a TEXT NOT NULL,
		strategy_b TEXT NOT NULL,
		task_count INTEGER NOT NULL,
		parcel_count INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		avg_a REAL NOT NULL,
		avg_b REAL NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_comparison_runs_created_at
	ON comparison_runs(created_at);
	`

	statements := []string{
		createRunsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
