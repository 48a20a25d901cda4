package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	zlog "github.com/rs/zerolog/log"

	"github.com/dfspolti/agenda-voluntarios/internal/application/auth"
	"github.com/dfspolti/agenda-voluntarios/internal/application/event"
	"github.com/dfspolti/agenda-voluntarios/internal/application/volunteer"
	"github.com/dfspolti/agenda-voluntarios/internal/config"
	rediscache "github.com/dfspolti/agenda-voluntarios/internal/infrastructure/caching/redis"
	"github.com/dfspolti/agenda-voluntarios/internal/infrastructure/db/postgres"
	"github.com/dfspolti/agenda-voluntarios/internal/logger"
	"github.com/dfspolti/agenda-voluntarios/internal/security"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/handlers"
	authmw "github.com/dfspolti/agenda-voluntarios/internal/transport/http/middleware"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/router"
)

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("config load failed")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			zlog.Fatal().Err(err).Msg("db ping failed")
		}
	}

	if cfg.MigrationsURL != "" {
		if err := runMigrations(db, cfg.MigrationsURL); err != nil {
			zlog.Fatal().Err(err).Msg("migrations failed")
		}
	}

	srv := newServer(cfg, db)

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
}

func newServer(cfg *config.Config, db *sql.DB) *http.Server {
	// 1) Infrastructure
	usersRepo := postgres.NewUsersRepo(db)
	eventsRepo := postgres.NewEventsRepo(db)
	volunteersRepo := postgres.NewVolunteersRepo(db)

	var cache event.Cache
	if cfg.RedisURL != "" {
		c, err := rediscache.New(cfg.RedisURL)
		if err != nil {
			zlog.Fatal().Err(err).Msg("redis init failed")
		}
		cache = c
		zlog.Info().Msg("event read cache enabled")
	} else {
		zlog.Warn().Msg("REDIS_URL empty: event read cache disabled")
	}

	// 2) Application
	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	authSvc := auth.New(usersRepo, tokens, sysClock{})
	eventSvc := event.New(eventsRepo, volunteersRepo, cache, cfg.CacheTTLDetails, cfg.CacheTTLList)
	volunteerSvc := volunteer.New(volunteersRepo)

	// 3) Transport
	ah := handlers.NewAuthHandler(authSvc)
	eh := handlers.NewEventsHandler(eventSvc)
	vh := handlers.NewVolunteersHandler(volunteerSvc)
	ph := handlers.NewProtectedHandler()
	zh := handlers.NewHealthHandler()
	bearer := authmw.NewAuth(tokens)

	httpHandler := router.New(ah, eh, vh, ph, zh, bearer)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}

func runMigrations(db *sql.DB, sourceURL string) error {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	zlog.Info().Msg("migrations applied")
	return nil
}
