package main

import (
	"flag"
	"log"
	"os"

	"BudgetWise/internal/di"
	"BudgetWise/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if cfg.Provider.APIKey == "" {
		// Not fatal: budget endpoints work without a key, market data
		// endpoints will report the missing credential per request.
		log.Printf("warning: ALPHAVANTAGE_API_KEY is not set, market data fetches will fail")
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
