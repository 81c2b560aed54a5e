package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/rosterdesk/shift-planner/backend/internal/config"
	"github.com/rosterdesk/shift-planner/backend/internal/repository"
	"github.com/rosterdesk/shift-planner/backend/internal/scheduling"
	"github.com/rosterdesk/shift-planner/backend/internal/seed"
	"github.com/rosterdesk/shift-planner/backend/internal/store"
	"github.com/rosterdesk/shift-planner/backend/internal/timezone"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "time/tzdata"
)

func main() {
	var workers int
	var shiftsPerWorker int

	flag.IntVar(&workers, "workers", 5, "number of random workers to insert")
	flag.IntVar(&shiftsPerWorker, "shifts", 3, "number of shifts to insert per worker")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect; ping to fail fast on a bad DSN
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to database", "error", err)
		return
	}

	entityStore := store.NewPostgres(cfg, dbpool)
	if err := entityStore.RunMigrations(ctx); err != nil {
		logger.Error("unable to run migrations", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, entityStore, timezone.NewCatalog())
	shifts := scheduling.NewService(repo)

	seed.SeedWorkers(context.Background(), repo, workers)
	seed.SeedShifts(context.Background(), repo, shifts, shiftsPerWorker)
}
