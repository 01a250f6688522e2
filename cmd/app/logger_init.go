package main

import (
	"github.com/osse101/DofusPlanner_Go/internal/config"
	"github.com/osse101/DofusPlanner_Go/internal/logger"
)

// initStdoutLogger is the fallback when the session log file cannot be opened
func initStdoutLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
