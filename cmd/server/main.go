package main

import (
	"fmt"

	"github.com/amirasaad/transfers/infra/initializer"
	"github.com/amirasaad/transfers/pkg/config"
	"github.com/amirasaad/transfers/webapi"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.Pipeline.Close()

	fiberApp := webapi.NewApp(deps.TransferSvc, deps.Logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
	)
	return fiberApp.Listen(addr)
}
