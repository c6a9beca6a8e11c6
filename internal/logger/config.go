package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config describes where a process's log lines come from and how they look
type Config struct {
	Level       slog.Level
	JSON        bool
	AddSource   bool
	Service     string
	Version     string
	Environment string
}

// ForEnvironment returns the output preset for env. Production logs JSON at
// info without source locations, tests log text at warn, anything else is
// treated as a dev box: text at debug with source locations.
func ForEnvironment(service, version, env string) Config {
	cfg := Config{Service: service, Version: version, Environment: env}
	switch env {
	case EnvironmentProduction, EnvironmentStaging:
		cfg.Level = slog.LevelInfo
		cfg.JSON = true
	case EnvironmentTest:
		cfg.Level = slog.LevelWarn
	default:
		cfg.Level = slog.LevelDebug
		cfg.AddSource = true
	}
	if cfg.Service == "" {
		cfg.Service = DefaultServiceName
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	return cfg
}

// Override applies LOG_LEVEL and LOG_FORMAT style values on top of the preset.
// Empty values keep the preset. An unparseable level keeps the preset level
// and is reported so the caller can log it once the logger exists.
func (c Config) Override(level, format string) (Config, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "":
	case LogFormatJSON:
		c.JSON = true
	case LogFormatText:
		c.JSON = false
	default:
		return c, fmt.Errorf("unknown log format %q", format)
	}

	if strings.TrimSpace(level) == "" {
		return c, nil
	}
	parsed, err := ParseLevel(level)
	if err != nil {
		return c, err
	}
	c.Level = parsed
	return c, nil
}

// ParseLevel accepts slog level names, offsets such as "debug+2", and "warning"
func ParseLevel(name string) (slog.Level, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, LogLevelWarning) {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

func (c Config) attrs() []slog.Attr {
	attrs := []slog.Attr{slog.String(AttrKeyService, c.Service)}
	if c.Version != "" {
		attrs = append(attrs, slog.String(AttrKeyVersion, c.Version))
	}
	if c.Environment != "" {
		attrs = append(attrs, slog.String(AttrKeyEnvironment, c.Environment))
	}
	return attrs
}
