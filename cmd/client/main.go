package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/mh-apps/aora-client/internal/adapter"
	"github.com/mh-apps/aora-client/internal/client"
	"github.com/mh-apps/aora-client/internal/config"
	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/internal/service"
	"github.com/mh-apps/aora-client/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("aora-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backend, err := adapter.NewRESTBackendAdapter(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, backend, cfg.Backend, log)

	var app client.Client
	app, err = client.NewApp(services, cfg.Workers, log)
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

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
