package main

import (
	"github.com/osse101/BackpackBot_Go/internal/config"
	"github.com/osse101/BackpackBot_Go/internal/handler"
	"github.com/osse101/BackpackBot_Go/internal/logger"
)

const serviceName = "backpackbot-api"

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only help in dev builds
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		handler.Version,
		cfg.Environment,
		addSource,
	))
}
