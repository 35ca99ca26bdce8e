package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/handler"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/server"
	"github.com/MKhiriev/project-elevate/internal/service"
	"github.com/MKhiriev/project-elevate/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("elevate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("env", cfg.App.Env).
		Str("address", cfg.Server.HTTPAddress).
		Str("token_issuer", cfg.App.TokenIssuer).
		Dur("token_duration", cfg.App.TokenDuration).
		Bool("bootstrap", cfg.App.Bootstrap.Enabled).
		Bool("demo_seed_disabled", cfg.App.DisableDemoSeed).
		Msg("received configs")

	if cfg.UsesDevelopmentSignKey() {
		log.Warn().Msg("no token sign key configured: using the built-in development key, tokens are forgeable; set APP_TOKEN_SIGN_KEY")
	}

	if err = run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	services, err := service.NewServices(store.NewStorages(db, log), cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	if cfg.App.Bootstrap.Enabled {
		if _, err = services.BootstrapService.Bootstrap(ctx); err != nil {
			return fmt.Errorf("error bootstrapping account: %w", err)
		}
	}
	if cfg.App.Bootstrap.Only {
		log.Info().Msg("bootstrap finished, exiting")
		return nil
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
