package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/project-elevate/internal/adapter"
	"github.com/MKhiriev/project-elevate/internal/client"
	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewConsoleLogger("elevate-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, cfg.Adapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
