package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/bracketforge/bracketforge/adminauth"
	"github.com/bracketforge/bracketforge/config"
	"github.com/bracketforge/bracketforge/httpapi"
	"github.com/bracketforge/bracketforge/ratelimit"
	"github.com/bracketforge/bracketforge/storedb"
	"github.com/bracketforge/bracketforge/taskqueue"
)

func connectDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}
	return pool, nil
}

func main() {
	conf, err := config.NewConfigFromEnv()
	if err != nil {
		slog.Error("failed to load env", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		conf.DBHost, conf.DBPort, conf.DBUser, conf.DBPassword, conf.DBName)
	pool, err := connectDB(ctx, dbDSN)
	if err != nil {
		slog.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	queries := storedb.New(pool)
	txm := storedb.NewTxManager(pool, queries)
	store := storedb.NewStore(queries, txm)

	authr := adminauth.NewAuthenticator(conf.AdminKeyHash, conf.JWTSecret)
	queue := taskqueue.NewQueue(conf.RedisAddr)
	defer queue.Close()

	loginRL := ratelimit.NewIPRateLimiter(rate.Every(time.Minute/5), 5)

	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			slog.LogAttrs(context.Background(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	apiGroup := e.Group("/api")
	apiGroup.Use(ratelimit.GuardedSuffixMiddleware(loginRL, "/login", "/matches"))
	if conf.IsLocal {
		apiGroup.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowCredentials: true,
		}))
	}

	h := httpapi.NewHandler(store, authr, queue)
	h.RegisterHandlers(apiGroup)

	if err := e.Start(conf.HTTPAddr); err != http.ErrServerClosed {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
