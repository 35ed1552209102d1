package barakah_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for BarakahBot end-to-end tests.
 * This includes container setup, HTTP helpers, and assertions.
 */

const (
	testImageName = "barakahbot-test:latest"

	sessionKey    = "e2e-session-signing-key-0123456789abcdef"
	webhookSecret = "whsec_e2e_test"
	adminEmail    = "admin@barakah.test"
	adminPassword = "Admin123!secure"

	sessionCookieName = "barakah_session"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building BarakahBot Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up BarakahBot Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/barakah/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Image might not exist
}

// setupBarakahContainer starts the service in a container and returns the
// base URL. Rate limits are relaxed so rapid test requests don't trip them.
func setupBarakahContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BARAKAH_DATABASE_FILE":  "/tmp/barakah.db",
			"BARAKAH_SESSION_KEY":    sessionKey,
			"BARAKAH_ADMIN_EMAIL":    adminEmail,
			"BARAKAH_ADMIN_PASSWORD": adminPassword,
			"PAYMENT_WEBHOOK_SECRET": webhookSecret,
			"ENV":                    "test",
			"LOG_LEVEL":              "info",
			"LOG_FORMAT":             "json",
			// Relaxed limits; rate limiting itself is covered separately.
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
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

// newClient returns an HTTP client that keeps cookies but never follows
// redirects, so tests can assert on 303 responses from the session gate.
func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
		Timeout: 10 * time.Second,
	}
}

// postJSON sends body as JSON and returns the response with its decoded body.
func postJSON(t *testing.T, client *http.Client, url string, body any) (*http.Response, []byte) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func jsonBody(t *testing.T, body any) io.Reader {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(payload)
}

func getJSON(t *testing.T, client *http.Client, url string) (*http.Response, []byte) {
	t.Helper()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// registerAndLogin creates a donor account and signs it in, leaving the
// session cookie in the client's jar.
func registerAndLogin(t *testing.T, client *http.Client, baseURL, email, password string) {
	t.Helper()

	resp, _ := postJSON(t, client, baseURL+"/v1/auth/register", map[string]string{
		"email":    email,
		"name":     "E2E Donor",
		"password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	login(t, client, baseURL, email, password)
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) {
	t.Helper()

	resp, body := postJSON(t, client, baseURL+"/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "login should succeed: %s", body)

	require.True(t, hasSessionCookie(resp), "login should set the session cookie")
}

func hasSessionCookie(resp *http.Response) bool {
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName && c.Value != "" {
			return true
		}
	}
	return false
}
