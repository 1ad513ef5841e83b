package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// SchemaState describes where the cases schema currently stands.
type SchemaState struct {
	Version uint
	Dirty   bool
	Empty   bool
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(files, ".")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration database driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("migration instance: %w", err)
	}
	return m, nil
}

func readState(m *migrate.Migrate) (SchemaState, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return SchemaState{Empty: true}, nil
	}
	if err != nil {
		return SchemaState{}, fmt.Errorf("read migration version: %w", err)
	}
	return SchemaState{Version: version, Dirty: dirty}, nil
}

// State reports the applied schema version without changing anything.
func State(db *sql.DB) (SchemaState, error) {
	m, err := newMigrator(db)
	if err != nil {
		return SchemaState{}, err
	}
	return readState(m)
}

// Run applies pending migrations. With autoMigrate=false it only logs the current state.
// A dirty baseline is forced back to its version before anything else runs.
func Run(db *sql.DB, autoMigrate bool) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	state, err := readState(m)
	if err != nil {
		return err
	}

	if state.Dirty {
		slog.Warn("[Migrations] Schema is dirty, forcing recorded version",
			"version", state.Version)
		if err := m.Force(int(state.Version)); err != nil {
			return fmt.Errorf("recover dirty schema at version %d: %w", state.Version, err)
		}
	}

	if !autoMigrate {
		slog.Info("[Migrations] Auto-migrate disabled",
			"version", state.Version,
			"empty", state.Empty)
		return nil
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("[Migrations] Schema up to date", "version", state.Version)
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	after, err := readState(m)
	if err != nil {
		return err
	}
	slog.Info("[Migrations] Applied",
		"from_version", state.Version,
		"to_version", after.Version)
	return nil
}
