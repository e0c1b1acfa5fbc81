package main

import (
	"fmt"

	"github.com/traduzo/traduzo/internal/adapter"
	"github.com/traduzo/traduzo/internal/client"
	"github.com/traduzo/traduzo/internal/config"
	"github.com/traduzo/traduzo/internal/logger"
	"github.com/traduzo/traduzo/internal/service"
	"github.com/traduzo/traduzo/internal/store"
	"github.com/traduzo/traduzo/internal/tui"
	"github.com/traduzo/traduzo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("traduzo-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	tokenStore, err := store.NewTokenStore(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create token store")
	}

	services := service.NewClientServices(tokenStore, serverAdapter, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
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
