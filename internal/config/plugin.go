package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/stats"
)

// Plugin is the content of config.yml
type Plugin struct {
	Settings Settings `yaml:"settings"`
	Storage  Storage  `yaml:"storage"`
}

// Settings holds gameplay settings
type Settings struct {
	EnablePlugin      bool          `yaml:"enable-plugin"`
	RecomputeInterval time.Duration `yaml:"recompute-interval" validate:"gte=1s"`
	RecomputeDelay    time.Duration `yaml:"recompute-delay" validate:"eq=0|gte=1s"`
	CacheSize         int           `yaml:"cache-size" validate:"gt=0"`
	Levels            Levels        `yaml:"levels"`
	Statistics        Statistics    `yaml:"statistics"`
	Rewards           Rewards       `yaml:"rewards"`
}

// Levels configures the leveling curve
type Levels struct {
	BaseXP       float64 `yaml:"base-xp" validate:"gt=0"`
	XPMultiplier float64 `yaml:"xp-multiplier" validate:"gt=0"`
}

// Storage selects and configures the persistence backend
type Storage struct {
	Type     string   `yaml:"type" validate:"oneof=sqlite postgres"`
	SQLite   SQLite   `yaml:"sqlite"`
	Postgres Postgres `yaml:"postgres"`
	MySQL    Postgres `yaml:"mysql"`
}

// SQLite configures the embedded backend
type SQLite struct {
	Path string `yaml:"path"`
}

// Postgres configures the networked backend
type Postgres struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" validate:"gte=0,lte=65535"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns a pgx connection string
func (p Postgres) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.Username, p.Password),
		Host:   fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:   "/" + p.Database,
	}
	sslmode := p.SSLMode
	if sslmode == "" {
		sslmode = DefaultPostgresSSLMode
	}
	u.RawQuery = url.Values{"sslmode": []string{sslmode}}.Encode()
	return u.String()
}

// Statistics is the ordered statistics section; the mapping key is the entry label
type Statistics []stats.Entry

// UnmarshalYAML keeps the document order of the mapping
func (s *Statistics) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return &yaml.TypeError{Errors: []string{fmt.Sprintf("line %d: statistics must be a mapping", value.Line)}}
	}
	entries := make(Statistics, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var e stats.Entry
		if err := value.Content[i+1].Decode(&e); err != nil {
			return fmt.Errorf("statistic %q: %w", value.Content[i].Value, err)
		}
		e.Label = value.Content[i].Value
		entries = append(entries, e)
	}
	*s = entries
	return nil
}

// Reward is one rewards entry before its level key is resolved
type Reward struct {
	Message  string   `yaml:"message"`
	Commands []string `yaml:"commands"`
}

// Rewards holds the rules keyed by level plus any keys that were not integers
type Rewards struct {
	Rules   map[int]domain.RewardRule
	Skipped []string
}

// UnmarshalYAML drops non-numeric level keys instead of failing the whole file
func (r *Rewards) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return &yaml.TypeError{Errors: []string{fmt.Sprintf("line %d: rewards must be a mapping", value.Line)}}
	}
	out := Rewards{Rules: make(map[int]domain.RewardRule, len(value.Content)/2)}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		level, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			out.Skipped = append(out.Skipped, key)
			continue
		}
		var rw Reward
		if err := value.Content[i+1].Decode(&rw); err != nil {
			return fmt.Errorf("reward %q: %w", key, err)
		}
		out.Rules[level] = domain.RewardRule{Level: level, Message: rw.Message, Commands: rw.Commands}
	}
	*r = out
	return nil
}

// Levels returns the configured reward levels in ascending order
func (r Rewards) Levels() []int {
	levels := make([]int, 0, len(r.Rules))
	for level := range r.Rules {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// DefaultPlugin returns the configuration used when config.yml is absent
func DefaultPlugin() Plugin {
	return Plugin{
		Settings: Settings{
			EnablePlugin:      DefaultEnablePlugin,
			RecomputeInterval: DefaultRecomputeInterval,
			RecomputeDelay:    DefaultRecomputeDelay,
			CacheSize:         DefaultCacheSize,
			Levels: Levels{
				BaseXP:       DefaultBaseXP,
				XPMultiplier: DefaultXPMultiplier,
			},
			Rewards: Rewards{Rules: map[int]domain.RewardRule{}},
		},
		Storage: Storage{
			Type:   StorageSQLite,
			SQLite: SQLite{Path: DefaultSQLitePath},
			Postgres: Postgres{
				Host:     DefaultPostgresHost,
				Port:     DefaultPostgresPort,
				Database: DefaultPostgresDatabase,
				Username: DefaultPostgresUsername,
				SSLMode:  DefaultPostgresSSLMode,
			},
		},
	}
}

// LoadPlugin loads config.yml. A missing file yields the defaults.
func LoadPlugin(path string) (Plugin, error) {
	cfg := DefaultPlugin()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info(LogMsgDefaultConfigUsed, "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	return ParsePlugin(data)
}

// ParsePlugin decodes config.yml content over the defaults. A document that
// cannot be decoded yields the defaults and an error; individual values that
// fail validation are reset to their defaults with a warning.
func ParsePlugin(data []byte) (Plugin, error) {
	cfg := DefaultPlugin()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var terr *yaml.TypeError
		if !errors.As(err, &terr) {
			return DefaultPlugin(), fmt.Errorf("parsing config: %w", err)
		}
		// values of the wrong type were skipped and keep their defaults
		for _, msg := range terr.Errors {
			slog.Warn(LogMsgValueIgnored, "error", msg)
		}
	}
	if cfg.Settings.Rewards.Rules == nil {
		cfg.Settings.Rewards.Rules = map[int]domain.RewardRule{}
	}

	for _, key := range cfg.Settings.Rewards.Skipped {
		slog.Warn(LogMsgRewardKeyIgnored, "key", key)
	}

	cfg.Storage.Type = strings.ToLower(strings.TrimSpace(cfg.Storage.Type))
	if cfg.Storage.Type == StorageMySQL {
		slog.Warn(LogMsgStorageTypeAlias, "type", StorageMySQL)
		cfg.Storage.Type = StoragePostgres
		if cfg.Storage.MySQL != (Postgres{}) {
			cfg.Storage.Postgres = cfg.Storage.MySQL
		}
	}

	for _, fe := range Repair(&cfg) {
		slog.Warn(LogMsgFieldReset, "field", fe.Field, "rule", fe.Rule)
	}
	return cfg, nil
}

// ApplyEnv lets process configuration override secrets in the file
func (p *Plugin) ApplyEnv(app *Config) {
	if app != nil && app.DBPassword != "" {
		p.Storage.Postgres.Password = app.DBPassword
	}
}
