package main

import (
	"context"
	"time"

	"mentecare-backend/config"
	"mentecare-backend/internal/infrastructure/database"
	"mentecare-backend/internal/infrastructure/logger"
	"mentecare-backend/internal/repository"
	"mentecare-backend/internal/seed"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	reset := pflag.Bool("reset", false, "remove the demo accounts before inserting them again")
	timeout := pflag.Duration("timeout", time.Minute, "overall timeout")
	pflag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.Setup(cfg.App)

	db, err := database.NewPostgresConnection(cfg.DB, false)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	seeder := seed.NewSeeder(db, log, repository.NewUserRepository(), repository.NewProfessionalRepository())
	result, err := seeder.Run(ctx, seed.Accounts(), *reset)
	if err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.WithFields(logrus.Fields{
		"created": result.Created,
		"skipped": result.Skipped,
		"removed": result.Removed,
	}).Info("seed complete")
}
