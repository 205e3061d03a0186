package main // Entry point package

import (
	"os"

	"github.com/joho/godotenv" // load a local .env file when present
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/song-catalog/internal/auth"
	"github.com/iliyamo/song-catalog/internal/config"
	"github.com/iliyamo/song-catalog/internal/database"
	"github.com/iliyamo/song-catalog/internal/handler"
	"github.com/iliyamo/song-catalog/internal/metrics"
	"github.com/iliyamo/song-catalog/internal/middleware"
	"github.com/iliyamo/song-catalog/internal/queue"
	"github.com/iliyamo/song-catalog/internal/repository"
	"github.com/iliyamo/song-catalog/internal/router"
	"github.com/iliyamo/song-catalog/migrations"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env directly

	cfg := config.Load() // exits the process on missing required vars

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.Open(database.Config{
		User: cfg.DBUser,
		Pass: cfg.DBPass,
		Host: cfg.DBHost,
		Port: cfg.DBPort,
		Name: cfg.DBName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := migrations.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	users := repository.NewUserRepo(db)
	songs := repository.NewSongRepo(db)

	tokens := auth.NewManager(cfg.JWTSecret, cfg.AccessTTLMin)
	m := metrics.New()

	// Nil when Redis is unreachable; the cache then no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, response cache disabled")
	}
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.HTTPMetrics(m))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens))
	router.RegisterSongs(e, handler.NewSongHandler(songs, cache, m), tokens, cache)

	go func() {
		if err := queue.StartCatalogConsumer(); err != nil {
			log.Error().Err(err).Msg("catalog consumer stopped")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")

	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
