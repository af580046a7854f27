package db

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"stadium-scheduler/internal/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type MigrationStatus struct {
	Version uint
	Dirty   bool
}

// Migrate applies steps migrations from dir; 0 means all the way up,
// a negative count rolls back that many.
func Migrate(cfg config.DBConfig, dir string, steps int) (MigrationStatus, error) {
	m, err := newMigrator(cfg, dir)
	if err != nil {
		return MigrationStatus{}, err
	}
	defer func() { _, _ = m.Close() }()

	if steps == 0 {
		err = m.Up()
	} else {
		err = m.Steps(steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return MigrationStatus{}, fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, fmt.Errorf("failed to read migration version: %w", err)
	}
	return MigrationStatus{Version: version, Dirty: dirty}, nil
}

func newMigrator(cfg config.DBConfig, dir string) (*migrate.Migrate, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations dir: %w", err)
	}
	m, err := migrate.New("file://"+filepath.ToSlash(abs), MigrateURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

// MigrateURL is the pool DSN under the pgx5 scheme the migrate driver registers.
func MigrateURL(cfg config.DBConfig) string {
	u, err := url.Parse(cfg.BuildDSN())
	if err != nil {
		return "pgx5" + strings.TrimPrefix(cfg.BuildDSN(), "postgres")
	}
	u.Scheme = "pgx5"
	return u.String()
}
