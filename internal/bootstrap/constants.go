package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session logs kept next to the new one
	LogFileRetentionCount = 9

	// ServiceName tags every log line of the server process
	ServiceName = "playerlevels"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingPlayerLevels = "Starting PlayerLevels"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgFailedCreateLogsDir  = "failed to create logs directory"
	LogMsgFailedOpenLogFile    = "failed to open log file"
	LogMsgFailedDeleteOldLog   = "Failed to delete old log file"
	LogMsgLogOverrideIgnored   = "Ignoring log setting"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgPluginShutdownFailed = "Plugin shutdown failed"
	LogMsgRuntimeStopped       = "Runtime stopped"
	LogMsgServerStopped        = "Server stopped"
)
