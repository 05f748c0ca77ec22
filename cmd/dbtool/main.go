package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"courier-sim/internal/adapters/repositories"
	"courier-sim/internal/config"
	"courier-sim/internal/platform/db"
	"courier-sim/internal/ports"
)

// dbtool manages the comparison run store: initializes the schema and
// lists recorded runs. Uses Postgres when DATABASE_URL is set, the local
// SQLite store otherwise.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var (
		initOnly = flag.Bool("init", false, "initialize the schema and exit")
		list     = flag.Bool("list", false, "list recorded comparison runs")
	)
	flag.Parse()

	if !*initOnly && !*list {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	repo, cleanup, err := openRepository(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if *initOnly {
		log.Println("Schema ready.")
		return
	}

	records, err := repo.ListComparisons(ctx)
	if err != nil {
		log.Fatal(err)
	}

	if len(records) == 0 {
		fmt.Println("no recorded runs")
		return
	}
	for _, rec := range records {
		fmt.Printf("%s  %s  %s=%.1f vs %s=%.1f  tasks=%d parcels=%d seed=%d\n",
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.RunID,
			rec.StrategyA, rec.AverageA,
			rec.StrategyB, rec.AverageB,
			rec.TaskCount, rec.ParcelCount, rec.Seed,
		)
	}
}

func openRepository(ctx context.Context) (ports.RunRepository, func(), error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}

		repo := repositories.NewSQLRunRepository(conn)
		if err := repo.InitSchema(ctx); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return repo, func() { conn.Close() }, nil
	}

	conn, err := db.OpenSQLite(config.Get("RUNS_DB_PATH", "data/runs.db"))
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSchema(conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return repositories.NewSqliteRunRepository(conn), func() { conn.Close() }, nil
}
