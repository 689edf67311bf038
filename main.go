package main

import (
	"log"

	"github.com/joho/godotenv"

	"boekhouder/cmd"
	"boekhouder/internal/config"
	"boekhouder/internal/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, cfgErr := config.Load()
	logCfg := logger.DefaultConfig()
	if cfgErr == nil {
		logCfg = cfg.GetLoggerConfig()
	}
	if err := logger.Setup(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	log := logger.WithComponent("main")
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("Could not load configuration")
	}
	log.Debug().Msg("Starting boekhouder")

	cmd.Execute(cfg, cfgErr)
}
