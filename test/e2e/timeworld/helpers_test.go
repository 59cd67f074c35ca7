package timeworld_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

/*
 * Common constants and helper functions for timeworld service end-to-end
 * tests: container setup, account helpers and assertions.
 */

const testImageName = "timeworld-test:latest"

// TestMain builds the Docker image once before all tests and removes it
// after the run.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building TimeWorld Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up TimeWorld Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/timeworld/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// setupContainer starts the service in a container and returns the base URL.
// Rate limits are relaxed since tests fire many rapid requests.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"TIMEWORLD_DATABASE_FILE":      "/timeworld.db",
			"TIMEWORLD_MASTER_SECRET_FILE": "/master.secret",
			"TIMEWORLD_ISSUER":             "timeworld-e2e",
			"ENV":                          "test",
			"LOG_LEVEL":                    "info",
			"LOG_FORMAT":                   "json",
			"RATELIMIT_STRICT_REQUESTS":    "1000",
			"RATELIMIT_STRICT_WINDOW_SEC":  "60",
			"RATELIMIT_STRICT_BURST":       "1000",
			"RATELIMIT_MODERATE_REQUESTS":  "1000",
			"RATELIMIT_MODERATE_BURST":     "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupContainerWithDefaultRateLimits keeps the production limits; only the
// rate limit test uses this.
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"TIMEWORLD_DATABASE_FILE":      "/timeworld.db",
			"TIMEWORLD_MASTER_SECRET_FILE": "/master.secret",
			"TIMEWORLD_ISSUER":             "timeworld-e2e",
			"ENV":                          "test",
			"LOG_LEVEL":                    "info",
			"LOG_FORMAT":                   "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerUser creates an account and returns an authenticated session.
func registerUser(t *testing.T, client *worldsdk.Client, phone string) *worldsdk.Session {
	t.Helper()

	resp, err := client.Register(t.Context(), phone, "Иван", "Иванов")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.UserID)

	return client.NewSession(resp.Token)
}

// assertAPIError verifies err is a typed service error with the given code.
func assertAPIError(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	var apiErr *worldsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, code, apiErr.Code)
}
