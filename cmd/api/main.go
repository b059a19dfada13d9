package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"avtomaster/pkg/cart"
	"avtomaster/pkg/catalog"
	pgcatalog "avtomaster/pkg/catalog/postgres"
	"avtomaster/pkg/logger"
	"avtomaster/pkg/notify"
	"avtomaster/pkg/otel"
	"avtomaster/pkg/session"
	sessionredis "avtomaster/pkg/session/redis"
)

// @title АвтоМастер API
// @version 1.0
// @description API for the car-service shop: catalog, cart, services and booking
// @host localhost:8080
// @BasePath /
func main() {
	log := logger.New(os.Stdout, logger.LevelInfo, "avtomaster", otel.GetTraceID)
	defer log.Sync()

	ctx := context.Background()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: "avtomaster",
		Host:        os.Getenv("OTEL_HOST"),
		Probability: 1.0,
	})
	if err != nil {
		log.Error(ctx, "init tracing", "error", err)
		os.Exit(1)
	}
	defer shutdown(ctx)
	tracer := tp.Tracer("avtomaster")

	products, err := loadCatalog(ctx)
	if err != nil {
		log.Error(ctx, "load catalog", "error", err)
		os.Exit(1)
	}
	log.Info(ctx, "catalog loaded", "products", len(products))

	redisClient := redis.NewClient(&redis.Options{Addr: os.Getenv("REDIS_ADDR")})

	notifier := notify.NewLog(log)
	sessions := session.NewManager(sessionredis.New(redisClient), func() *session.State {
		return &session.State{
			Cart:    cart.NewStore(notifier),
			Catalog: catalog.NewStore(products),
		}
	})
	go sweep(ctx, sessions)

	a := &app{
		log:      log,
		tracer:   tracer,
		sessions: sessions,
		notifier: notifier,
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Info(ctx, "listening", "addr", addr)
	if err := http.ListenAndServe(addr, a.routes()); err != nil {
		log.Error(ctx, "server closed", "error", err)
	}
}

// loadCatalog reads products from Postgres when DATABASE_URL is set,
// falling back to the built-in fixture. The catalog is read once and
// immutable afterwards.
func loadCatalog(ctx context.Context) ([]catalog.Product, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return catalog.Default(), nil
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if _, err := db.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS products (id INT PRIMARY KEY, name TEXT, price INT, category TEXT, in_stock BOOLEAN)"); err != nil {
		return nil, err
	}
	products, err := pgcatalog.New(db).Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return catalog.Default(), nil
	}
	return products, nil
}

// sweep periodically drops state for expired sessions.
func sweep(ctx context.Context, sessions *session.Manager) {
	t := time.NewTicker(10 * time.Minute)
	defer t.Stop()
	for range t.C {
		sessions.Sweep(ctx)
	}
}
