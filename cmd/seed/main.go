package main

import (
	"os"

	"invoice-analytics-backend/internal/config"
	"invoice-analytics-backend/internal/database"
	"invoice-analytics-backend/internal/logger"
	"invoice-analytics-backend/internal/seeder"

	"go.uber.org/zap"
)

// Seeds the database from a JSON invoice dataset. The file path comes from
// the first argument, falling back to SEED_FILE. Exits non-zero on any
// failure; the operator fixes the input and reruns.
func main() {
	cfg := config.Load()
	logger.Init(cfg)
	log := logger.L()
	defer log.Sync()

	path := cfg.Seed.FilePath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close(db)

	if err := seeder.New(db, log).Run(path); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}
}
