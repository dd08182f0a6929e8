package main

import (
	"context"
	"fmt"
	"os"

	"github.com/junohealth/notecache/internal/adapter"
	"github.com/junohealth/notecache/internal/client"
	"github.com/junohealth/notecache/internal/config"
	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/internal/service"
	"github.com/junohealth/notecache/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("notecache")

	// Command flags must be registered before the config layer parses the
	// command line.
	cmd := client.RegisterCommandFlags()
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	remote, err := adapter.NewHTTPRemoteSource(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote source adapter")
	}
	diagnostics := adapter.NewDiagnosticSink(cfg.Adapter, log)

	storages, err := store.OpenStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, remote, diagnostics, cfg.Cache, log)

	app := client.NewApp(services, cmd, cfg.Workers, log)
	if err = app.Run(context.Background()); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
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

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
