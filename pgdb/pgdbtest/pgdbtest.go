// Package pgdbtest provides isolated, fully migrated postgres databases for
// repository tests.
package pgdbtest

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/peterldowns/pgtestdb"
	"github.com/peterldowns/pgtestdb/migrators/golangmigrator"
	"github.com/skilldev/backend/migrate"
)

// NewDB returns a connection pool to a unique and isolated test database,
// fully migrated and ready for testing. The test is skipped unless
// PGTESTDB_HOST points at a postgres server.
func NewDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	host := os.Getenv("PGTESTDB_HOST")
	if host == "" {
		t.Skip("PGTESTDB_HOST not set, skipping postgres test")
	}
	ctx := context.Background()
	conf := pgtestdb.Config{
		DriverName: "pgx",
		User:       envOr("PGTESTDB_USER", "skilldev"),
		Password:   envOr("PGTESTDB_PASSWORD", "skilldev"),
		Host:       host,
		Port:       envOr("PGTESTDB_PORT", "5433"),
		Options:    "sslmode=disable",
	}
	gm := golangmigrator.New(".", golangmigrator.WithFS(migrate.FS))
	config := pgtestdb.Custom(t, conf, gm)

	pool, err := pgxpool.New(ctx, config.URL())
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
