package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// APIKeyName is the name looked up in both the secrets file and the environment.
const APIKeyName = "GOOGLE_API_KEY"

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	SecretsFile string
	GeminiModel string

	// Redis (optional, enables cross-instance transcript push)
	RedisURL string

	// Sessions
	SessionSecret  string
	SessionIdleTTL time.Duration

	// Frontend
	FrontendURL string

	ShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		Env:            getEnvOrDefault("ENV", "development"),
		SecretsFile:    getEnvOrDefault("SECRETS_FILE", ".streamlit/secrets.toml"),
		GeminiModel:    getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		RedisURL:       getEnvOrDefault("REDIS_URL", ""),
		SessionSecret:  getEnvOrDefault("SESSION_SECRET", ""),
		SessionIdleTTL: getEnvAsDurationOrDefault("SESSION_IDLE_TTL", 2*time.Hour),
		FrontendURL:    getEnvOrDefault("FRONTEND_URL", "http://localhost:8080"),

		ShutdownTimeout: time.Duration(getEnvAsIntOrDefault("SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ConfigurationError reports that the API credential could not be found in
// any source. The application must not offer interactive sections when it
// occurs.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return "API Key not found. Please set it in secrets.toml or environment variables."
}

// ResolveAPIKey returns the Gemini API key. The secrets file is consulted
// first; a missing, unreadable or malformed file counts as unavailable and
// the environment is tried next.
func ResolveAPIKey(secretsFile string) (string, error) {
	if key, err := readSecret(secretsFile, APIKeyName); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("WARNING: secrets file %s unavailable: %v", secretsFile, err)
		}
	} else if key != "" {
		return key, nil
	}

	if key := os.Getenv(APIKeyName); key != "" {
		return key, nil
	}

	return "", &ConfigurationError{Key: APIKeyName}
}

func readSecret(path, key string) (string, error) {
	if path == "" {
		return "", fs.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var secrets map[string]interface{}
	if err := toml.Unmarshal(data, &secrets); err != nil {
		return "", fmt.Errorf("failed to parse secrets: %w", err)
	}

	val, _ := secrets[key].(string)
	return val, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
