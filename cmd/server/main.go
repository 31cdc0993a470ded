package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/adpoint-gateway/internal/adapter"
	"github.com/MKhiriev/adpoint-gateway/internal/config"
	"github.com/MKhiriev/adpoint-gateway/internal/handler"
	"github.com/MKhiriev/adpoint-gateway/internal/logger"
	"github.com/MKhiriev/adpoint-gateway/internal/metrics"
	"github.com/MKhiriev/adpoint-gateway/internal/server"
	"github.com/MKhiriev/adpoint-gateway/internal/service"
	"github.com/MKhiriev/adpoint-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("adpoint-gateway")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Object("config", cfg).Msg("received configs")

	registry := metrics.NewRegistry()
	m := metrics.New(registry)

	adpoint, err := adapter.NewHTTPAdpointAdapter(cfg.Adpoint, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adpoint adapter")
	}
	if !adpoint.Configured() {
		log.Warn().Msg("ADPOINT_AUTH_HEADER is empty, searches will fail until it is configured")
	}

	services := service.NewServices(adpoint, *cfg, buildInfo, m, log)

	handlers, err := handler.NewHandlers(services, *cfg, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
