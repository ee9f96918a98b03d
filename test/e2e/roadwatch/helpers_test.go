package roadwatch_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/roadwatch/roadwatch/pkg/roadwatchsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and helpers for the roadwatch end-to-end tests. The image
 * is built once from cmd/roadwatch/Dockerfile; every test gets a fresh
 * container and database.
 */

const (
	testImageName = "roadwatch-test:latest"
	testPassword  = "Secret123!"
)

// imageReady is false when the image could not be built, e.g. without Docker.
var imageReady bool

func TestMain(m *testing.M) {
	flag.Parse()

	if !testing.Short() {
		fmt.Fprintf(os.Stdout, "Building roadwatch Docker image...")
		if err := buildDockerImage(); err != nil {
			fmt.Fprintf(os.Stdout, " skipped: %v\n", err)
		} else {
			imageReady = true
			fmt.Fprintf(os.Stdout, " done\n")
		}
	}

	exitCode := m.Run()

	if imageReady {
		fmt.Fprintf(os.Stdout, "Cleaning up roadwatch Docker image...")
		cleanupDockerImage()
		fmt.Fprintf(os.Stdout, " done\n")
	}

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/roadwatch/Dockerfile",
		"../../../")
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // the image may already be gone
}

// relaxedLimits lifts the credential rate limit so tests can log in freely.
var relaxedLimits = map[string]string{
	"RATELIMIT_AUTH_PER_MINUTE":  "1000",
	"RATELIMIT_AUTH_BURST":       "1000",
	"RATELIMIT_WRITE_PER_MINUTE": "1000",
	"RATELIMIT_WRITE_BURST":      "1000",
}

// setupContainer starts roadwatch with extra environment and returns a
// client for it. The container is terminated when the test ends.
func setupContainer(t *testing.T, extraEnv map[string]string) *roadwatchsdk.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("end-to-end test skipped in short mode")
	}
	if !imageReady {
		t.Skip("roadwatch image not available")
	}
	ctx := context.Background()

	env := map[string]string{
		"ENV":        "test",
		"LOG_LEVEL":  "info",
		"LOG_FORMAT": "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env:          env,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	return roadwatchsdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// registerAndLogin creates a local account and returns an authenticated client.
func registerAndLogin(t *testing.T, client *roadwatchsdk.Client, email string) (*roadwatchsdk.Client, roadwatchsdk.SessionResponse) {
	t.Helper()
	ctx := context.Background()

	_, err := client.Register(ctx, roadwatchsdk.RegisterRequest{
		Username: email,
		Email:    email,
		Password: testPassword,
	})
	require.NoError(t, err, "register %s", email)

	session, resp, err := client.Login(ctx, email, testPassword)
	require.NoError(t, err, "login %s", email)
	require.NotEmpty(t, resp.Token)
	return session, resp
}

func assertHealthy(t *testing.T, health roadwatchsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}
