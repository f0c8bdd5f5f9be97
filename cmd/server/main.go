package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-blogr/internal/config"
	handlerhttp "github.com/MKhiriev/go-blogr/internal/handler/http"
	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/internal/server"
	"github.com/MKhiriev/go-blogr/internal/service"
	"github.com/MKhiriev/go-blogr/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// "server init-db" recreates the schema and exits; the subcommand is
	// stripped before flag parsing so the remaining flags still apply.
	initDB := len(os.Args) > 1 && os.Args[1] == "init-db"
	if initDB {
		os.Args = append(os.Args[:1], os.Args[2:]...)
	}

	role := "go-blogr-server"
	if initDB {
		role = "go-blogr-init-db"
	}
	log := logger.NewLogger(role)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	if initDB {
		if err := db.Recreate(); err != nil {
			log.Fatal().Err(err).Msg("error recreating database schema")
		}
		log.Info().Msg("database schema recreated")
		return
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying database migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg.App, log)
	handler := handlerhttp.NewHandler(db, services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
