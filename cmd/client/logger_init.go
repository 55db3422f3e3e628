package main

import (
	"github.com/aldoria/market-client/internal/config"
	"github.com/aldoria/market-client/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}

// version is stamped at build time via -ldflags.
var version = "dev"
