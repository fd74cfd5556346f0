package main

import (
	"fmt"
	"os"

	"mentecare-backend/config"
	"mentecare-backend/internal/infrastructure/database"
	"mentecare-backend/internal/infrastructure/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	steps := pflag.Int("steps", 0, "number of migrations to apply (0 = all)")
	dir := pflag.String("dir", "", "migrations directory (overrides DB_MIGRATIONS_DIR)")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: migrate [flags] up|down\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	direction := database.MigrationDirection(pflag.Arg(0))
	if direction != database.MigrateUp && direction != database.MigrateDown {
		pflag.Usage()
		os.Exit(2)
	}
	if *steps < 0 {
		logrus.Fatal("--steps must not be negative")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if *dir != "" {
		cfg.DB.MigrationsDir = *dir
	}

	log := logger.Setup(cfg.App)
	if err := database.RunMigrations(cfg.DB, direction, *steps, log); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}
