// Package pgtest starts a throwaway PostgreSQL for integration tests and prepares
// it with the application's schema.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"ordertracking/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Image is the PostgreSQL image used by integration tests.
const Image = "postgres:15-alpine"

// Database is a migrated PostgreSQL running in a container.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DSN       string
	DB        *gorm.DB
}

// Start runs a container, applies the migrations and opens a gorm handle.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		Image,
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	database := &Database{Container: container}

	database.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	if err = postgres.RunMigrations(database.DSN); err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	database.DB, err = postgres.Open(database.DSN, postgres.PoolConfig{MaxOpenConns: 10})
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	return database, nil
}

// Truncate empties every table and resets identity sequences.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE order_items, orders, products, customers RESTART IDENTITY CASCADE").Error
}

// Terminate closes the pool and removes the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d.DB != nil {
		_ = postgres.Close(d.DB)
	}
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
