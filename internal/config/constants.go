package config

import "time"

// Environment variable names
const (
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvLogDir          = "LOG_DIR"
	EnvPluginConfig    = "PLAYERLEVELS_CONFIG"
	EnvDBPassword      = "DB_PASSWORD"
	EnvHTTPPort        = "HTTP_PORT"
	EnvAPIURL          = "API_URL"
	EnvAPIKey          = "API_KEY"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvWorkerCount     = "WORKER_COUNT"
	EnvWorkerQueueSize = "WORKER_QUEUE_SIZE"
	EnvDiscordToken    = "DISCORD_TOKEN"
	EnvDiscordAppID    = "DISCORD_APP_ID"
	EnvVersion         = "APP_VERSION"
)

// Application defaults
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultLogDir           = "logs"
	DefaultPluginConfigPath = "config.yml"
	DefaultHTTPPort         = 8080
	DefaultAPIURL           = "http://localhost:8080"
	DefaultWorkerCount      = 4
	DefaultWorkerQueueSize  = 256
	DefaultVersion          = "dev"
)

// Plugin defaults
const (
	DefaultEnablePlugin      = true
	DefaultRecomputeInterval = 5 * time.Minute
	DefaultRecomputeDelay    = 1 * time.Minute
	DefaultCacheSize         = 10000
	DefaultBaseXP            = 100.0
	DefaultXPMultiplier      = 1.5

	DefaultSQLitePath       = "playerlevels.db"
	DefaultPostgresHost     = "localhost"
	DefaultPostgresPort     = 5432
	DefaultPostgresDatabase = "minecraft"
	DefaultPostgresUsername = "root"
	DefaultPostgresSSLMode  = "disable"
)

// Storage types
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMySQL    = "mysql"
)

// Log messages
const (
	LogMsgRewardKeyIgnored  = "Invalid level key in rewards section, ignoring"
	LogMsgStorageTypeAlias  = "Storage type is not supported, using postgres instead"
	LogMsgDefaultConfigUsed = "Config file not found, using defaults"
	LogMsgFieldReset        = "Invalid config value, using default"
	LogMsgValueIgnored      = "Config value has the wrong type, using default"
)
