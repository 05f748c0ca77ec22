package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"courier-sim/internal/adapters/cache"
	"courier-sim/internal/adapters/repositories"
	"courier-sim/internal/config"
	"courier-sim/internal/dataset"
	"courier-sim/internal/platform/db"
	"courier-sim/internal/platform/obs"
	"courier-sim/internal/ports"
	"courier-sim/internal/services"
	"courier-sim/internal/strategies"
)

// main is the application composition root. It wires the BFS route
// finder, caches, and the run store behind their ports and dispatches to
// a single-strategy run or a two-strategy comparison.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var (
		strategyName = flag.String("strategy", "nearest-parcel", "strategy for a single run (random, fixed-route, nearest-goal, nearest-parcel)")
		compareNames = flag.String("compare", "", "compare two strategies, e.g. -compare fixed-route,nearest-parcel")
		tasks        = flag.Int("tasks", services.DefaultTaskCount, "number of random tasks for a comparison")
		parcels      = flag.Int("parcels", services.DefaultParcelCount, "parcels per random task")
		seed         = flag.Int64("seed", 0, "rng seed (0 = derive from current time)")
		datasetPath  = flag.String("dataset", config.Get("DATASET_PATH", ""), "town map YAML (empty = built-in town)")
		record       = flag.Bool("record", false, "record the comparison outcome in the run store")
		turnCap      = flag.Int("turn-cap", 0, "abort a run after this many turns (0 = unbounded)")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ds, err := loadDataset(*datasetPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := ds.Validate(); err != nil {
		log.Fatal(err)
	}

	graph, err := ds.Graph()
	if err != nil {
		log.Fatal(err)
	}

	finder := cache.NewCachingRouteFinder(services.NewBFSRouteFinder(graph), routeCache())
	rng := rand.New(rand.NewSource(*seed))

	newStrategy := func(name string) (strategies.Strategy, error) {
		switch name {
		case "random":
			return strategies.NewRandom(graph, rng), nil
		case "fixed-route":
			return strategies.NewFixedRoute(ds.Tour), nil
		case "nearest-goal":
			return strategies.NewNearestGoal(finder), nil
		case "nearest-parcel":
			return strategies.NewNearestParcelFirst(finder), nil
		default:
			return nil, fmt.Errorf("unknown strategy %q", name)
		}
	}

	runID := uuid.NewString()
	ctx := context.WithValue(context.Background(), obs.RunIDKey, runID)

	if *compareNames != "" {
		names := strings.Split(*compareNames, ",")
		if len(names) != 2 {
			log.Fatalf("-compare wants exactly two strategy names, got %q", *compareNames)
		}

		a, err := newStrategy(strings.TrimSpace(names[0]))
		if err != nil {
			log.Fatal(err)
		}
		b, err := newStrategy(strings.TrimSpace(names[1]))
		if err != nil {
			log.Fatal(err)
		}

		result, err := services.CompareStrategies(ctx, services.CompareRequest{
			Graph:       graph,
			Hub:         ds.Hub,
			StrategyA:   a,
			StrategyB:   b,
			TaskCount:   *tasks,
			ParcelCount: *parcels,
			Seed:        *seed,
			TurnCap:     *turnCap,
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%s: %.1f turns/task over %d tasks\n", result.StrategyA, result.AverageA, result.TaskCount)
		fmt.Printf("%s: %.1f turns/task over %d tasks\n", result.StrategyB, result.AverageB, result.TaskCount)

		if *record {
			if err := recordComparison(ctx, runID, *parcels, *seed, result); err != nil {
				log.Fatal(err)
			}
			log.Printf("run_id=%s op=record status=saved", runID)
		}
		return
	}

	strat, err := newStrategy(*strategyName)
	if err != nil {
		log.Fatal(err)
	}

	state, err := services.RandomWorldState(graph, ds.Hub, *parcels, rng)
	if err != nil {
		log.Fatal(err)
	}

	turns, err := services.Run(ctx, services.RunRequest{
		Graph:    graph,
		State:    state,
		Strategy: strat,
		TurnCap:  *turnCap,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s delivered %d parcels in %d turns (seed %d)\n", strat.Name(), *parcels, turns, *seed)
}

func loadDataset(path string) (dataset.Dataset, error) {
	if path == "" {
		return dataset.Default(), nil
	}
	return dataset.Load(path)
}

// routeCache picks the shared redis backend when REDIS_ADDR is set, the
// in-process map otherwise.
func routeCache() ports.RouteCache {
	addr := os.Getenv("REDIS_ADDR")
	if strings.TrimSpace(addr) == "" {
		return cache.NewMemoryRouteCache()
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	return cache.NewRedisRouteCache(client, 0)
}

// recordComparison stores the outcome in Postgres when DATABASE_URL is
// set, in the local SQLite store otherwise.
func recordComparison(ctx context.Context, runID string, parcelCount int, seed int64, result *services.CompareResult) error {
	rec := ports.ComparisonRecord{
		RunID:       runID,
		CreatedAt:   time.Now().UTC(),
		StrategyA:   result.StrategyA,
		StrategyB:   result.StrategyB,
		TaskCount:   result.TaskCount,
		ParcelCount: parcelCount,
		Seed:        seed,
		AverageA:    result.AverageA,
		AverageB:    result.AverageB,
	}

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		repo := repositories.NewSQLRunRepository(conn)
		if err := repo.InitSchema(ctx); err != nil {
			return err
		}
		return repo.SaveComparison(ctx, rec)
	}

	conn, err := db.OpenSQLite(config.Get("RUNS_DB_PATH", "data/runs.db"))
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := repositories.InitSchema(conn); err != nil {
		return err
	}
	return repositories.NewSqliteRunRepository(conn).SaveComparison(ctx, rec)
}
