package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"github.com/nfrund/flightdesk/internal/config"
	"github.com/nfrund/flightdesk/internal/logging"
)

// ConfigForTests loads the .env.test file, points the backend client at
// apiBaseURL when it is not empty and returns a validated config.
func ConfigForTests(t *testing.T, apiBaseURL string) *config.Config {
	t.Helper()

	// 1. Find project root by looking for go.mod to reliably locate .env.test
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	// 2. Manually read the .env.test file.
	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}

	// 3. t.Setenv restores the previous values when the test ends.
	for key, value := range env {
		t.Setenv(key, value)
	}
	if apiBaseURL != "" {
		t.Setenv("API_BASE_URL", apiBaseURL)
	}

	logging.New()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("invalid test configuration: %v", err)
	}
	return cfg
}
