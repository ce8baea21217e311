package integrationtestutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/ohsms/database"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const postgresImage = "postgres:16-alpine"

// InitDatabaseContainer starts a throwaway postgres, runs the embedded
// migrations and returns gorm and the pgx pool on top of it. The test is
// skipped in -short mode or when no container runtime is reachable.
func InitDatabaseContainer(t testing.TB) (shared.DB, *pgxpool.Pool) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()
	cfg := database.PoolConfig{
		User:     "ohsms",
		Password: "ohsms",
		DBName:   "ohsms",
		SSLMode:  "disable",

		MaxOpenConns: 5,
		MinConns:     1,
	}

	postgresC, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase(cfg.DBName),
		postgres.WithUsername(cfg.User),
		postgres.WithPassword(cfg.Password),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		// no docker on this machine
		t.Skipf("could not start postgres container: %s", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	cfg.Host, err = postgresC.Host(ctx)
	if err != nil {
		t.Fatalf("could not read container host: %s", err)
	}
	port, err := postgresC.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("could not read container port: %s", err)
	}
	cfg.Port = port.Port()

	pool := database.NewPgxConnPool(cfg)
	t.Cleanup(pool.Close)
	db := database.NewGormDB(pool)

	if err := database.RunMigrationsWithDB(db); err != nil {
		t.Fatalf("failed to run migrations: %s", err)
	}
	return db, pool
}
