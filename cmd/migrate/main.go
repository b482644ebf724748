package main

import (
	"github.com/sirupsen/logrus"

	"sportsbook/internal/config"
	"sportsbook/internal/database"
)

// Applies the schema migrations without starting the API server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if err := database.Connect(cfg.GetDSN()); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(); err != nil {
		logrus.Fatalf("Failed to apply migrations: %v", err)
	}

	logrus.Info("Migrations applied successfully")
}
