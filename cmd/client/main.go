package main

import (
	"fmt"

	"github.com/cfdapp/crowdfund-client/internal/client"
	"github.com/cfdapp/crowdfund-client/internal/config"
	"github.com/cfdapp/crowdfund-client/internal/logger"
	"github.com/cfdapp/crowdfund-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fallback := logger.New("crowdfund-client")
		fallback.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("crowdfund-client", cfg.App.LogPath)

	app, err := client.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
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
