package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mradulpatle03/IDE/internal/cache"
	"github.com/mradulpatle03/IDE/internal/config"
	"github.com/mradulpatle03/IDE/internal/database"
	"github.com/mradulpatle03/IDE/internal/gemini"
	"github.com/mradulpatle03/IDE/internal/handler"
	"github.com/mradulpatle03/IDE/internal/imagekit"
	"github.com/mradulpatle03/IDE/internal/logger"
	"github.com/mradulpatle03/IDE/internal/piston"
	"github.com/mradulpatle03/IDE/internal/repository"
)

type application struct {
	DB      *pgxpool.Pool
	Redis   *redis.Client
	Logger  *zap.Logger
	Config  *config.Config
	Handler *handler.Application
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	if err := database.Migrate(ctx, cfg.DB.DSN); err != nil {
		sugar.Fatal(err)
	}

	pool, err := database.Connect(ctx, database.Options{
		DSN:             cfg.DB.DSN,
		MaxConns:        cfg.DB.MaxConns,
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	redisClient := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, redisClient); err != nil {
		// the cache is best-effort; run without it
		sugar.Warnw("redis unavailable, caching disabled", "err", err)
		redisClient = nil
	}

	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	pistonClient := piston.NewClient(cfg.Piston.BaseURL, cfg.Piston.Timeout)
	imagekitClient := imagekit.NewClient(cfg.ImageKit.PrivateKey)

	repo := repository.NewRepository(pool)

	handlerApp := &handler.Application{
		Logger:    log,
		Users:     repo.User,
		Projects:  repo.Project,
		Sessions:  repo.Session,
		Questions: repo.Question,
		AI:        geminiClient,
		Runner:    pistonClient,
		Uploader:  imagekitClient,
		Cache:     redisClient,
		JwtSecret: cfg.JWT.Secret,
		JwtTTL:    cfg.JWT.TokenTTL,
	}

	app := &application{
		DB:      pool,
		Redis:   redisClient,
		Logger:  log,
		Config:  cfg,
		Handler: handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
