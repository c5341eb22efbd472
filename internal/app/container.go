package app

import (
	"context"
	"log"
	"os"
	"time"

	"staffing/internal/config"
	"staffing/internal/database"
	dbpostgres "staffing/internal/database/postgres"
	"staffing/internal/database/seeder"
	"staffing/internal/infrastructure/cache"
	"staffing/internal/ws"
)

// Container owns the process-wide infrastructure: database pool, redis
// cache, websocket hub. Everything downstream borrows from it.
type Container struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	Notifier *ws.Notifier
	Logger   *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	return &Container{
		Config:   cfg,
		DB:       db,
		Cache:    redisCache,
		Hub:      hub,
		Notifier: ws.NewNotifier(hub),
		Logger:   logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
