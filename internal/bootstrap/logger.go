package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/PlayerLevels_Go/internal/config"
	"github.com/osse101/PlayerLevels_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// Each run writes a new session log in cfg.LogDir; older sessions beyond
// LogFileRetentionCount are removed.
// Returns the log file handle, which the caller must close.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return SetupLoggerWithWriter(cfg, os.Stdout)
}

// SetupLoggerWithWriter is SetupLogger with console output going to console
func SetupLoggerWithWriter(cfg *config.Config, console io.Writer) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logCfg, overrideErr := logger.ForEnvironment(ServiceName, cfg.Version, cfg.Environment).
		Override(cfg.LogLevel, cfg.LogFormat)
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(console, logFile))
	if overrideErr != nil {
		slog.Warn(LogMsgLogOverrideIgnored, "error", overrideErr)
	}

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.Level, "file", logFileName)
	slog.Info(LogMsgStartingPlayerLevels,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"plugin_config", cfg.PluginConfigPath,
		"http_port", cfg.HTTPPort,
		"workers", cfg.WorkerCount)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	slices.Sort(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
