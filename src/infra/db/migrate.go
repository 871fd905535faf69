package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrationStatus describes one migration known to the database.
type MigrationStatus struct {
	Version   int64
	Name      string
	Applied   bool
	AppliedAt time.Time
}

// Migrator applies the embedded schema migrations over the handle's pool.
type Migrator struct {
	pg *Postgres
}

// NewMigrator returns a Migrator for pg.
func NewMigrator(pg *Postgres) *Migrator {
	return &Migrator{pg: pg}
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	return m.withProvider(ctx, func(p *goose.Provider) error {
		results, err := p.Up(ctx)
		for _, r := range results {
			m.pg.log.Info("migration applied",
				"version", r.Source.Version,
				"file", r.Source.Path,
				"duration", r.Duration.String(),
			)
		}
		if err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		return nil
	})
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	return m.withProvider(ctx, func(p *goose.Provider) error {
		r, err := p.Down(ctx)
		if err != nil {
			if errors.Is(err, goose.ErrNoNextVersion) {
				m.pg.log.Info("no migration to roll back")
				return nil
			}
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
		m.pg.log.Info("migration rolled back", "version", r.Source.Version, "file", r.Source.Path)
		return nil
	})
}

// Status lists every embedded migration and whether it is applied.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	var out []MigrationStatus
	err := m.withProvider(ctx, func(p *goose.Provider) error {
		statuses, err := p.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		for _, s := range statuses {
			out = append(out, MigrationStatus{
				Version:   s.Source.Version,
				Name:      s.Source.Path,
				Applied:   s.State == goose.StateApplied,
				AppliedAt: s.AppliedAt,
			})
		}
		return nil
	})
	return out, err
}

func (m *Migrator) withProvider(ctx context.Context, fn func(p *goose.Provider) error) error {
	pool, err := m.pg.Pool(ctx)
	if err != nil {
		return err
	}
	pgxp, ok := PgxPool(pool)
	if !ok {
		return errors.New("migrations require a pgx connection pool")
	}

	sqlDB := stdlib.OpenDBFromPool(pgxp)
	defer sqlDB.Close()

	fsys, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	return fn(provider)
}
