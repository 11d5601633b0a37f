package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bracketforge/bracketforge/config"
	"github.com/bracketforge/bracketforge/storedb"
	"github.com/bracketforge/bracketforge/taskqueue"
)

func main() {
	conf, err := config.NewConfigFromEnv()
	if err != nil {
		slog.Error("failed to load env", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		conf.DBHost, conf.DBPort, conf.DBUser, conf.DBPassword, conf.DBName)
	pool, err := pgxpool.New(ctx, dbDSN)
	if err != nil {
		slog.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	queries := storedb.New(pool)
	txm := storedb.NewTxManager(pool, queries)
	store := storedb.NewStore(queries, txm)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: conf.RedisAddr},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.Handle(string(taskqueue.TaskTypeFinalizeTournament), taskqueue.NewHandler(store))

	if err := srv.Run(mux); err != nil {
		slog.Error("task worker failed", "error", err)
		os.Exit(1)
	}
}
