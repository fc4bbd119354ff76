package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for migrations
	"go.uber.org/zap"

	"github.com/edu-rico/nbafx-engine/pkg/auth"
	"github.com/edu-rico/nbafx-engine/pkg/config"
	"github.com/edu-rico/nbafx-engine/pkg/database"
	"github.com/edu-rico/nbafx-engine/pkg/handlers"
	"github.com/edu-rico/nbafx-engine/pkg/logging"
	"github.com/edu-rico/nbafx-engine/pkg/middleware"
	"github.com/edu-rico/nbafx-engine/pkg/repositories"
	"github.com/edu-rico/nbafx-engine/pkg/retry"
	"github.com/edu-rico/nbafx-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("database", cfg.Database.Database),
		zap.String("db_host", cfg.Database.Host),
		zap.Int("db_port", cfg.Database.Port))

	ctx := context.Background()

	// Apply schema migrations before opening the pool. The database may
	// still be coming up when we are started alongside it, so wait it out.
	migrationDB, err := sql.Open("pgx", cfg.Database.URL())
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	if err := retry.Do(ctx, nil, func() error { return migrationDB.PingContext(ctx) }); err != nil {
		logger.Fatal("Database never became ready", zap.String("error", logging.SanitizeError(err)))
	}
	if err := database.RunMigrations(migrationDB, cfg.Database.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := migrationDB.Close(); err != nil {
		logger.Warn("Failed to close migration connection", zap.Error(err))
	}

	db, err := retry.DoWithResult(ctx, nil, func() (*database.DB, error) {
		return database.NewConnection(ctx, &cfg.Database)
	})
	if err != nil {
		// Connection errors can carry the DSN, so scrub before logging.
		logger.Fatal("Failed to connect to database", zap.String("error", logging.SanitizeError(err)))
	}
	defer db.Close()

	playerRepo := repositories.NewPlayerRepository(db)
	userRepo := repositories.NewUserRepository(db)
	rosterRepo := repositories.NewRosterRepository(db)

	playerService := services.NewPlayerService(playerRepo, logger)
	userService := services.NewUserService(userRepo, logger)
	rosterService := services.NewRosterService(rosterRepo, playerRepo, logger)

	sessions := auth.NewSessions(cfg.SessionSecret)
	authMiddleware := auth.NewMiddleware(sessions, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, db, logger).RegisterRoutes(mux)
	handlers.NewAuthHandler(userService, sessions, logger).RegisterRoutes(mux)
	handlers.NewPlayersHandler(playerService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewUsersHandler(userService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewRosterHandler(rosterService, logger).RegisterRoutes(mux, authMiddleware)

	handler := middleware.RequestLogger(logger)(mux)

	addr := net.JoinHostPort(cfg.BindAddr, cfg.Port)
	logger.Info("Starting nbafx-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
