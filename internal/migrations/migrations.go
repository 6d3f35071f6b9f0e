package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var MigrationFiles embed.FS

// RunMigrations brings the rankings schema to the newest embedded version
// and returns the version the database ends up at (0 when none applied).
// With autoMigrate false it recovers a dirty state, if any, and reports the
// current version without applying anything.
func RunMigrations(db *sql.DB, autoMigrate bool) (uint, error) {
	m, err := newMigrator(db)
	if err != nil {
		return 0, err
	}

	current, dirty, err := schemaVersion(m)
	if err != nil {
		return 0, err
	}

	if dirty {
		target := recoveryTarget(current)
		slog.Warn("[Migrations] Schema left dirty by an interrupted run, forcing back",
			"dirty_version", current,
			"forced_to", target,
		)
		// Every migration uses IF NOT EXISTS, so the interrupted version is
		// re-run from scratch on the next Up.
		if err := m.Force(target); err != nil {
			return 0, fmt.Errorf("failed to recover dirty schema at version %d: %w", current, err)
		}
		if current, _, err = schemaVersion(m); err != nil {
			return 0, err
		}
	}

	if !autoMigrate {
		slog.Info("[Migrations] Auto-migration disabled, leaving schema as is", "schema_version", current)
		return current, nil
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("[Migrations] Rankings schema is current", "schema_version", current)
			return current, nil
		}
		return current, fmt.Errorf("failed to apply rankings migrations: %w", err)
	}

	applied, _, err := schemaVersion(m)
	if err != nil {
		return current, err
	}
	slog.Info("[Migrations] Rankings schema upgraded", "from_version", current, "to_version", applied)
	return applied, nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(MigrationFiles, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

// schemaVersion reports an unmigrated database as version 0.
func schemaVersion(m *migrate.Migrate) (uint, bool, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, dirty, nil
}

// recoveryTarget is the version to force a dirty schema back to: the one
// before the interrupted migration, or no version when the first one failed.
func recoveryTarget(dirty uint) int {
	if dirty <= 1 {
		return database.NilVersion
	}
	return int(dirty) - 1
}
