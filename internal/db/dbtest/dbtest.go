// Package dbtest provides a Postgres pool with the fittrack schema for integration tests.
// POSTGRES_HOST / POSTGRES_PORT point at an existing database; without them a
// disposable postgres container is started through dockertest.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/2beens/fittrack/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const testDBName = "fittrack_test"

// NewPool returns a pool on an empty fittrack schema.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	host, port := os.Getenv("POSTGRES_HOST"), os.Getenv("POSTGRES_PORT")
	if host == "" {
		host, port = startContainer(t)
	}
	if port == "" {
		port = "5432"
	}

	applySchema(t, host, port)

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:   host,
		DBPort:   port,
		DBName:   testDBName,
		MaxConns: 8,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	Truncate(t, pool)
	return pool
}

// Truncate empties every fittrack table and resets the id sequences.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(
		context.Background(),
		`TRUNCATE exercises, workouts, friends, goals, users RESTART IDENTITY CASCADE;`,
	)
	require.NoError(t, err)
}

func startContainer(t *testing.T) (string, string) {
	t.Helper()

	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not create new dockertest pool")
	require.NoError(t, dockerPool.Client.Ping(), "could not ping docker")
	dockerPool.MaxWait = 2 * time.Minute

	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + testDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "dockerpool run postgres")
	t.Cleanup(func() {
		if err := dockerPool.Purge(pgResource); err != nil {
			t.Logf("postgres teardown: %s", err)
		}
	})

	port := pgResource.GetPort("5432/tcp")
	require.NoError(t, dockerPool.Retry(func() error {
		conn, err := sql.Open("postgres", dsn("localhost", port))
		if err != nil {
			return err
		}
		defer conn.Close()
		return conn.Ping()
	}), "connect to db")

	return "localhost", port
}

func applySchema(t *testing.T, host, port string) {
	t.Helper()

	conn, err := sql.Open("postgres", dsn(host, port))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(db.Schema)
	require.NoError(t, err, "run schema script")
}

func dsn(host, port string) string {
	if _, err := strconv.Atoi(port); err != nil {
		port = "5432"
	}
	return fmt.Sprintf("postgres://postgres@%s:%s/%s?sslmode=disable", host, port, testDBName)
}
