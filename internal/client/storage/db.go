// Package storage opens the device-local sqlite database and applies the
// embedded goose migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/actionunit/aumcli/internal/client/migrations"
)

// Open opens (or creates) the local database at dsn and migrates it to the
// latest schema.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening local db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating local db: %w", err)
	}

	return db, nil
}

// RunMigrations applies the embedded migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
