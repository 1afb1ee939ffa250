package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/expofair/directory/internal/config"
	"github.com/expofair/directory/internal/directory"
	"github.com/expofair/directory/internal/logging"
	"github.com/expofair/directory/internal/source"
	"github.com/expofair/directory/internal/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"source_backend", cfg.Source.Backend,
		"locale", cfg.Directory.Locale,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	ctx := context.Background()

	// Build the row source
	var src source.Source
	switch strings.ToLower(cfg.Source.Backend) {
	case "postgres":
		poolConfig, err := pgxpool.ParseConfig(cfg.Source.DatabaseURL)
		if err != nil {
			slog.Error("failed to parse database URL", "error", err)
			os.Exit(1)
		}
		poolConfig.MaxConns = int32(cfg.Source.MaxConns)
		poolConfig.MinConns = int32(cfg.Source.MinConns)
		poolConfig.MaxConnLifetime = cfg.Source.MaxConnLifetime
		poolConfig.MaxConnIdleTime = cfg.Source.MaxConnIdleTime

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			slog.Error("failed to ping database", "error", err)
			os.Exit(1)
		}

		pg := source.NewPostgres(pool)
		if err := pg.Migrate(ctx); err != nil {
			slog.Error("failed to migrate row source", "error", err)
			os.Exit(1)
		}
		src = pg
		slog.Info("using postgres row source")

	default:
		src = source.NewCSV(cfg.Source.DataDir)
		slog.Info("using csv row source", "dir", cfg.Source.DataDir)
	}

	schema := directory.DefaultSchema()
	schema.ExhibitorSheet = cfg.Directory.ExhibitorSheet
	schema.TeamSheet = cfg.Directory.TeamSheet
	schema.PartnerSheet = cfg.Directory.PartnerSheet

	service, err := directory.NewService(src, schema, cfg.Directory.Locale)
	if err != nil {
		slog.Error("failed to create service", "error", err)
		os.Exit(1)
	}

	server := web.NewServer(service, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
