package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsDurationOrDefault(t *testing.T) {
	t.Setenv("TEST_DUR_1", "45m")
	t.Setenv("TEST_DUR_2", "soon")
	t.Setenv("TEST_DUR_3", "-1s")

	if got := getEnvAsDurationOrDefault("TEST_DUR_1", time.Hour); got != 45*time.Minute {
		t.Errorf("Expected 45m, got %s", got)
	}
	if got := getEnvAsDurationOrDefault("TEST_DUR_2", time.Hour); got != time.Hour {
		t.Errorf("Expected default for unparsable value, got %s", got)
	}
	if got := getEnvAsDurationOrDefault("TEST_DUR_3", time.Hour); got != time.Hour {
		t.Errorf("Expected default for negative value, got %s", got)
	}
}

func writeSecrets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write secrets file: %v", err)
	}
	return path
}

func TestResolveAPIKey_SecretsFileWins(t *testing.T) {
	t.Setenv(APIKeyName, "from-env")
	path := writeSecrets(t, `GOOGLE_API_KEY = "from-secrets"`+"\n")

	key, err := ResolveAPIKey(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "from-secrets" {
		t.Fatalf("expected secrets file value, got %q", key)
	}
}

func TestResolveAPIKey_FallsBackToEnv(t *testing.T) {
	t.Setenv(APIKeyName, "from-env")

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.toml")},
		{"no path", ""},
		{"key absent", writeSecrets(t, `OTHER_KEY = "x"`+"\n")},
		{"empty key", writeSecrets(t, `GOOGLE_API_KEY = ""`+"\n")},
		{"malformed file", writeSecrets(t, "GOOGLE_API_KEY = \n[[[")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, err := ResolveAPIKey(tc.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if key != "from-env" {
				t.Fatalf("expected env value, got %q", key)
			}
		})
	}
}

func TestResolveAPIKey_MissingEverywhere(t *testing.T) {
	t.Setenv(APIKeyName, "")

	_, err := ResolveAPIKey(filepath.Join(t.TempDir(), "nope.toml"))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if cfgErr.Key != APIKeyName {
		t.Fatalf("expected key %q, got %q", APIKeyName, cfgErr.Key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "GEMINI_MODEL", "REDIS_URL", "SESSION_IDLE_TTL", "SHUTDOWN_TIMEOUT_SECONDS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Expected port 8080, got %q", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("Expected default model, got %q", cfg.GeminiModel)
	}
	if cfg.RedisURL != "" {
		t.Errorf("Expected redis to be disabled by default, got %q", cfg.RedisURL)
	}
	if cfg.SessionIdleTTL != 2*time.Hour {
		t.Errorf("Expected 2h idle ttl, got %s", cfg.SessionIdleTTL)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected 30s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("Expected development env by default")
	}
}
