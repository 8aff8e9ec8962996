package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/forum-dev/forum-api/internal/config"
	"github.com/forum-dev/forum-api/internal/logger"
	"github.com/forum-dev/forum-api/internal/router"
	"github.com/forum-dev/forum-api/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		return
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	addr := fmt.Sprintf(":%d", cfg.Public.HttpPort)
	logger.Log.Info("server started", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
	}
}
