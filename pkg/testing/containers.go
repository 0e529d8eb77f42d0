// Package testing holds helpers for tests that need real infrastructure.
package testing

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

// IntegrationEnabled reports whether docker-backed tests were requested.
func IntegrationEnabled() bool {
	return os.Getenv("IHEALTH_INTEGRATION") == "1"
}

func newDockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	if !IntegrationEnabled() {
		t.Skip("set IHEALTH_INTEGRATION=1 to run docker backed tests")
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, dockerPool.Client.Ping())
	dockerPool.MaxWait = time.Minute
	return dockerPool
}

func run(t *testing.T, dockerPool *dockertest.Pool, opts *dockertest.RunOptions) *dockertest.Resource {
	t.Helper()

	resource, err := dockerPool.RunWithOptions(opts, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := dockerPool.Purge(resource); err != nil {
			t.Logf("purge %s container: %s", opts.Repository, err)
		}
	})
	require.NoError(t, resource.Expire(180))
	return resource
}

// PostgresURL runs a throwaway postgres container and returns its connection URL
// once the database accepts connections. The container is purged when the test finishes.
func PostgresURL(t *testing.T) string {
	t.Helper()

	dockerPool := newDockerPool(t)
	resource := run(t, dockerPool, &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=ihealth",
		},
	})

	dbURL := fmt.Sprintf("postgres://postgres@localhost:%s/ihealth?sslmode=disable", resource.GetPort("5432/tcp"))
	t.Logf("using test database: %s", dbURL)

	err := dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		p, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			return err
		}
		defer p.Close()
		return p.Ping(ctx)
	})
	require.NoError(t, err)

	return dbURL
}

// StartPostgres is PostgresURL plus a pool connected to it.
func StartPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), PostgresURL(t))
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// StartRedis runs a throwaway redis container and returns its host port.
func StartRedis(t *testing.T) string {
	t.Helper()

	dockerPool := newDockerPool(t)
	resource := run(t, dockerPool, &dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	})
	port := resource.GetPort("6379/tcp")

	err := dockerPool.Retry(func() error {
		rdb := redis.NewClient(&redis.Options{Addr: net.JoinHostPort("localhost", port)})
		defer rdb.Close()
		return rdb.Ping(context.Background()).Err()
	})
	require.NoError(t, err)

	return port
}

// FreePort asks the kernel for a free TCP port.
func FreePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	_, portStr, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return port
}
