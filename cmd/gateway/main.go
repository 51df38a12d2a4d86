package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/config"
	"github.com/MKhiriev/go-api-gateway/internal/handler"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/server"
	"github.com/MKhiriev/go-api-gateway/internal/service"
	"github.com/MKhiriev/go-api-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.App.ServiceName, cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	upstream := adapter.NewHTTPUpstreamAdapter(cfg.Upstream, log)
	buildInfo := models.NewAppBuildInfo(cfg.App.ServiceName, buildVersion, buildDate, buildCommit)
	services := service.NewServices(upstream, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("starting gateway")
	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
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
