package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process-level configuration read from the environment
type Config struct {
	LogLevel         string
	LogFormat        string
	Environment      string
	LogDir           string
	Version          string
	PluginConfigPath string
	DBPassword       string
	HTTPPort         int
	APIURL           string
	// APIKey guards /api/v1 when set; empty leaves the API open
	APIKey          string
	TrustedProxies  []string
	WorkerCount     int
	WorkerQueueSize int
	DiscordToken    string
	DiscordAppID    string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional, real env vars win
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:        getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		LogDir:           getEnv(EnvLogDir, DefaultLogDir),
		Version:          getEnv(EnvVersion, DefaultVersion),
		PluginConfigPath: getEnv(EnvPluginConfig, DefaultPluginConfigPath),
		DBPassword:       getEnv(EnvDBPassword, ""),
		APIURL:           getEnv(EnvAPIURL, DefaultAPIURL),
		APIKey:           getEnv(EnvAPIKey, ""),
		TrustedProxies:   splitList(getEnv(EnvTrustedProxies, "")),
		WorkerCount:      getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		WorkerQueueSize:  getEnvAsInt(EnvWorkerQueueSize, DefaultWorkerQueueSize),
		DiscordToken:     getEnv(EnvDiscordToken, ""),
		DiscordAppID:     getEnv(EnvDiscordAppID, ""),
	}

	portStr := getEnv(EnvHTTPPort, strconv.Itoa(DefaultHTTPPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvHTTPPort, err)
	}
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("invalid %s value: %d out of range", EnvHTTPPort, port)
	}
	cfg.HTTPPort = port

	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = DefaultWorkerCount
	}
	if cfg.WorkerQueueSize < 1 {
		cfg.WorkerQueueSize = DefaultWorkerQueueSize
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default for unset or unparsable values
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// splitList parses a comma separated list, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
