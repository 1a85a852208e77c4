package main

import (
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/client"
	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/identity"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("recipe-keeper")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	persistLocal := cfg.Identity.Persistence == config.PersistenceLocal
	tokenStore := identity.NopTokenStore()
	if persistLocal {
		tokenStore = localStorage.Sessions
	}

	provider, err := identity.NewHTTPProvider(cfg.Identity, tokenStore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create identity provider")
	}

	backendAdapter, err := adapter.NewHTTPBackendAdapter(cfg.Backend, provider, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	services := service.NewClientServices(localStorage, provider, backendAdapter, persistLocal, log)

	ui, err := tui.New(services, log)
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
