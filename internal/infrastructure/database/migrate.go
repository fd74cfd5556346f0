package database

import (
	"database/sql"
	"errors"
	"fmt"

	"mentecare-backend/config"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
)

type MigrationDirection string

const (
	MigrateUp   MigrationDirection = "up"
	MigrateDown MigrationDirection = "down"
)

// RunMigrations applies the SQL files in cfg.MigrationsDir. steps == 0
// means all pending (up) or all applied (down) migrations.
func RunMigrations(cfg config.DBConfig, direction MigrationDirection, steps int, log *logrus.Logger) error {
	db, err := sql.Open("pgx", cfg.PostgresURL())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", cfg.MigrationsDir), "postgres", driver)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"direction": direction, "steps": steps}).Info("running migrations...")

	switch {
	case steps > 0 && direction == MigrateDown:
		err = m.Steps(-steps)
	case steps > 0:
		err = m.Steps(steps)
	case direction == MigrateDown:
		err = m.Down()
	default:
		err = m.Up()
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no migrations to run")
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return verr
	}
	log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("migrations applied")
	return nil
}
