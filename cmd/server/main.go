package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inventory-master/internal/adapter"
	"github.com/MKhiriev/inventory-master/internal/config"
	handler "github.com/MKhiriev/inventory-master/internal/handler/http"
	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/MKhiriev/inventory-master/internal/server"
	"github.com/MKhiriev/inventory-master/internal/service"
	"github.com/MKhiriev/inventory-master/internal/store"
	"github.com/MKhiriev/inventory-master/internal/workers"
	"github.com/MKhiriev/inventory-master/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("inventory-master-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	hashPool := workers.NewHashPool(cfg.Workers.HashWorkers, log)
	mailWorker := workers.NewMailWorker(
		adapter.NewMailGateway(cfg.Mailer, log),
		cfg.Workers.MailQueueSize,
		log,
	)

	allWorkers := workers.NewWorkers(hashPool, mailWorker)
	allWorkers.Run()
	defer allWorkers.Stop()

	services := service.NewServices(*storages, hashPool, *cfg, log)
	handlers := handler.NewHandler(services, mailWorker, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
