package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-member-auth/internal/config"
	"github.com/MKhiriev/go-member-auth/internal/crypto"
	"github.com/MKhiriev/go-member-auth/internal/handler"
	"github.com/MKhiriev/go-member-auth/internal/logger"
	"github.com/MKhiriev/go-member-auth/internal/server"
	"github.com/MKhiriev/go-member-auth/internal/service"
	"github.com/MKhiriev/go-member-auth/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-member-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if err = storages.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	hashers, err := crypto.NewDefaultHashers(cfg.Hashing)
	if err != nil {
		log.Fatal().Err(err).Msg("error configuring password hashers")
	}

	services, err := service.NewServices(storages, hashers, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, cfg.App.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
