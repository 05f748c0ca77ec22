package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"courier-sim/internal/ports"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqliteRunRepositorySaveAndList(t *testing.T) {
	repo := NewSqliteRunRepository(openTestDB(t))
	ctx := context.Background()

	older := ports.ComparisonRecord{
		RunID:       "run-1",
		CreatedAt:   time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		StrategyA:   "fixed-route",
		StrategyB:   "nearest-parcel",
		TaskCount:   100,
		ParcelCount: 5,
		Seed:        42,
		AverageA:    18.2,
		AverageB:    12.9,
	}
	newer := older
	newer.RunID = "run-2"
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)
	newer.StrategyA = "random"
	newer.AverageA = 63.4

	if err := repo.SaveComparison(ctx, older); err != nil {
		t.Fatalf("save older: %v", err)
	}
	if err := repo.SaveComparison(ctx, newer); err != nil {
		t.Fatalf("save newer: %v", err)
	}

	records, err := repo.ListComparisons(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].RunID != "run-2" {
		t.Fatalf("expected newest first, got %q", records[0].RunID)
	}
	if records[1].StrategyB != "nearest-parcel" {
		t.Fatalf("strategy_b = %q, want nearest-parcel", records[1].StrategyB)
	}
	if records[1].AverageB != 12.9 {
		t.Fatalf("avg_b = %v, want 12.9", records[1].AverageB)
	}
	if !records[1].CreatedAt.Equal(older.CreatedAt) {
		t.Fatalf("created_at = %v, want %v", records[1].CreatedAt, older.CreatedAt)
	}
}

func TestSqliteRunRepositoryEmptyList(t *testing.T) {
	repo := NewSqliteRunRepository(openTestDB(t))

	records, err := repo.ListComparisons(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestSqliteRunRepositoryNilDB(t *testing.T) {
	repo := NewSqliteRunRepository(nil)

	if err := repo.SaveComparison(context.Background(), ports.ComparisonRecord{}); err == nil {
		t.Fatal("expected error for nil DB")
	}
	if _, err := repo.ListComparisons(context.Background()); err == nil {
		t.Fatal("expected error for nil DB")
	}
}
