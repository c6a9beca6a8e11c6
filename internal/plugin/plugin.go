// Package plugin ties the leveling components to a host server: it loads
// configuration, owns storage and runs the periodic recompute.
package plugin

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/PlayerLevels_Go/internal/config"
	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/host"
	"github.com/osse101/PlayerLevels_Go/internal/leveling"
	"github.com/osse101/PlayerLevels_Go/internal/logger"
	"github.com/osse101/PlayerLevels_Go/internal/metrics"
	"github.com/osse101/PlayerLevels_Go/internal/player"
	"github.com/osse101/PlayerLevels_Go/internal/repository"
	"github.com/osse101/PlayerLevels_Go/internal/reward"
	"github.com/osse101/PlayerLevels_Go/internal/stats"
)

// ErrNotEnabled is returned by operations that need Enable to have run
var ErrNotEnabled = errors.New("plugin not enabled")

// Options configures a Plugin
type Options struct {
	ConfigPath string
	Server     host.Server
	Scheduler  host.Scheduler
	// Catalog validates statistic names; nil uses stats.DefaultCatalog
	Catalog stats.Catalog
	// App carries environment overrides such as DB_PASSWORD
	App *config.Config
	// OpenRepository replaces the storage factory, mainly for tests
	OpenRepository func(ctx context.Context, cfg config.Storage) (repository.Player, error)
}

// Plugin is the PlayerLevels lifecycle
type Plugin struct {
	opts   Options
	mapper *stats.Mapper

	store   *player.Store
	rewards *reward.Dispatcher

	enabled atomic.Bool

	mu               sync.RWMutex
	cfg              config.Plugin
	weights          []domain.StatisticWeight
	cancelRecompute  func()
	recomputeTimings [2]time.Duration
}

// New creates a Plugin; nothing happens until Enable
func New(opts Options) *Plugin {
	if opts.Catalog == nil {
		opts.Catalog = stats.DefaultCatalog()
	}
	if opts.OpenRepository == nil {
		opts.OpenRepository = OpenRepository
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultPluginConfigPath
	}
	return &Plugin{opts: opts, mapper: stats.NewMapper(), cfg: config.DefaultPlugin()}
}

// Enable loads configuration, opens storage and starts the recompute task.
// A storage failure is logged and the plugin keeps running without persistence.
func (p *Plugin) Enable(ctx context.Context) error {
	log := logger.FromContext(ctx)

	created, err := config.EnsureDefault(p.opts.ConfigPath)
	if err != nil {
		log.Warn(LogMsgConfigInvalid, "error", err)
	} else if created {
		log.Info(LogMsgDefaultConfigWritten, "path", p.opts.ConfigPath)
	}

	cfg := p.loadConfig(ctx)
	curve := p.curveFor(ctx, cfg, leveling.DefaultCurve())

	repo, err := p.opts.OpenRepository(ctx, cfg.Storage)
	if err != nil {
		log.Error(LogMsgStorageFailed, "type", cfg.Storage.Type, "error", err)
		repo = player.UnavailableRepository{Cause: err}
	} else {
		log.Info(LogMsgStorageReady, "type", cfg.Storage.Type)
	}

	store, err := player.NewStore(repo, curve, cfg.Settings.CacheSize)
	if err != nil {
		_ = repo.Close()
		return err
	}
	p.store = store
	p.rewards = reward.NewDispatcher(p.opts.Server, p.opts.Scheduler, cfg.Settings.Rewards.Rules)
	store.SetListener(p.rewards)

	p.apply(ctx, cfg)
	log.Info(LogMsgPluginEnabled, "enabled", p.Enabled(), "statistics", len(p.Weights()))
	return nil
}

// Disable stops background work, flushes cached records and closes storage
func (p *Plugin) Disable(ctx context.Context) error {
	if p.store == nil {
		return ErrNotEnabled
	}
	p.mu.Lock()
	if p.cancelRecompute != nil {
		p.cancelRecompute()
		p.cancelRecompute = nil
	}
	p.mu.Unlock()

	p.store.SaveAll(ctx)
	err := p.store.Close()
	logger.FromContext(ctx).Info(LogMsgPluginDisabled)
	return err
}

// Reload re-reads config.yml and applies everything except storage settings
func (p *Plugin) Reload(ctx context.Context) error {
	if p.store == nil {
		return ErrNotEnabled
	}
	cfg := p.loadConfig(ctx)

	p.mu.RLock()
	storageChanged := cfg.Storage != p.cfg.Storage
	p.mu.RUnlock()
	if storageChanged {
		logger.FromContext(ctx).Warn(LogMsgStorageChanged)
	}

	p.store.SetCurve(p.curveFor(ctx, cfg, p.store.Curve()))
	p.rewards.SetRules(cfg.Settings.Rewards.Rules)
	p.apply(ctx, cfg)
	logger.FromContext(ctx).Info(LogMsgConfigReloaded, "enabled", p.Enabled(), "statistics", len(p.Weights()))
	return nil
}

func (p *Plugin) loadConfig(ctx context.Context) config.Plugin {
	cfg, err := config.LoadPlugin(p.opts.ConfigPath)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgConfigInvalid, "path", p.opts.ConfigPath, "error", err)
		cfg = config.DefaultPlugin()
	}
	cfg.ApplyEnv(p.opts.App)
	return cfg
}

func (p *Plugin) curveFor(ctx context.Context, cfg config.Plugin, fallback leveling.Curve) leveling.Curve {
	curve, err := leveling.NewCurve(cfg.Settings.Levels.BaseXP, cfg.Settings.Levels.XPMultiplier)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgCurveInvalid, "error", err)
		return fallback
	}
	return curve
}

// apply swaps in statistics, the enabled flag and the recompute schedule
func (p *Plugin) apply(ctx context.Context, cfg config.Plugin) {
	weights, rejected := stats.Validate(p.opts.Catalog, cfg.Settings.Statistics)
	for _, r := range rejected {
		logger.FromContext(ctx).Warn(stats.LogMsgStatisticRejected,
			"label", r.Entry.Label, "statistic", r.Entry.Statistic, "reason", r.Reason)
	}

	p.mu.Lock()
	p.cfg = cfg
	p.weights = weights
	p.enabled.Store(cfg.Settings.EnablePlugin)

	timings := [2]time.Duration{cfg.Settings.RecomputeDelay, cfg.Settings.RecomputeInterval}
	reschedule := p.cancelRecompute == nil || timings != p.recomputeTimings
	if reschedule && p.cancelRecompute != nil {
		p.cancelRecompute()
		p.cancelRecompute = nil
	}
	p.recomputeTimings = timings
	p.mu.Unlock()

	if reschedule {
		cancel := p.opts.Scheduler.RunRepeatingAsync(timings[0], timings[1], func(ctx context.Context) {
			p.RecomputeAll(ctx)
		})
		p.mu.Lock()
		p.cancelRecompute = cancel
		p.mu.Unlock()
	}
}

// Enabled reports the settings.enable-plugin flag
func (p *Plugin) Enabled() bool {
	return p.enabled.Load()
}

// Store returns the player record store; nil before Enable
func (p *Plugin) Store() *player.Store {
	return p.store
}

// Rewards returns the reward dispatcher; nil before Enable
func (p *Plugin) Rewards() *reward.Dispatcher {
	return p.rewards
}

// Server returns the host server
func (p *Plugin) Server() host.Server {
	return p.opts.Server
}

// Scheduler returns the host scheduler
func (p *Plugin) Scheduler() host.Scheduler {
	return p.opts.Scheduler
}

// Config returns the active plugin configuration
func (p *Plugin) Config() config.Plugin {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

// Weights returns the validated statistic weights
func (p *Plugin) Weights() []domain.StatisticWeight {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.weights
}

// Curve returns the active leveling curve
func (p *Plugin) Curve() leveling.Curve {
	if p.store == nil {
		return leveling.DefaultCurve()
	}
	return p.store.Curve()
}

// RecomputePlayer derives experience from the player's statistics and stores it.
// Passive recomputes never grant rewards.
func (p *Plugin) RecomputePlayer(ctx context.Context, hp host.Player) (domain.PlayerRecord, error) {
	if p.store == nil {
		return domain.PlayerRecord{}, ErrNotEnabled
	}
	xp := p.mapper.Compute(ctx, hp.Name(), p.Weights(), hp.Statistic)
	return p.store.Upsert(ctx, hp.ID(), hp.Name(), xp), nil
}

// RecomputeAll recomputes every online player and returns how many were processed.
// It does nothing while the plugin is disabled.
func (p *Plugin) RecomputeAll(ctx context.Context) int {
	if !p.Enabled() || p.store == nil {
		return 0
	}
	start := time.Now()
	online := p.opts.Server.OnlinePlayers()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(RecomputeConcurrency)
	var done atomic.Int64
	for _, hp := range online {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if _, err := p.RecomputePlayer(gctx, hp); err != nil {
				return err
			}
			done.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	n := int(done.Load())
	metrics.RecomputeDuration.Observe(time.Since(start).Seconds())
	metrics.RecomputedPlayers.Add(float64(n))
	logger.FromContext(ctx).Debug(LogMsgRecomputeFinished, "players", n, "duration", time.Since(start))
	return n
}

// Progress returns the record for hp plus the experience missing for the next
// level, computing it first when the player has no record yet.
func (p *Plugin) Progress(ctx context.Context, hp host.Player) (domain.PlayerProgress, bool) {
	if p.store == nil {
		return domain.PlayerProgress{}, false
	}
	rec, ok := p.store.Get(ctx, hp.ID())
	if !ok {
		if !p.Enabled() {
			return domain.PlayerProgress{}, false
		}
		var err error
		if rec, err = p.RecomputePlayer(ctx, hp); err != nil {
			return domain.PlayerProgress{}, false
		}
	}
	return p.ProgressOf(rec), true
}

// ProgressOf decorates rec with the experience missing for the next level
func (p *Plugin) ProgressOf(rec domain.PlayerRecord) domain.PlayerProgress {
	return domain.PlayerProgress{PlayerRecord: rec, ExperienceToNext: p.Curve().ExperienceToNext(rec.Experience)}
}

// OnJoin computes a first record for players storage has never seen
func (p *Plugin) OnJoin(ctx context.Context, hp host.Player) {
	if p.store == nil || !p.Enabled() {
		return
	}
	log := logger.FromContext(ctx)
	p.opts.Scheduler.RunAsync(func(taskCtx context.Context) {
		if _, ok := p.store.Get(taskCtx, hp.ID()); ok {
			return
		}
		rec, err := p.RecomputePlayer(taskCtx, hp)
		if err == nil {
			log.Debug(LogMsgFirstJoin, logger.AttrKeyPlayerName, rec.Name, "level", rec.Level)
		}
	})
}

// SetLevel assigns a level to a player and fires the matching reward
func (p *Plugin) SetLevel(ctx context.Context, hp host.Player, level int) (domain.PlayerRecord, error) {
	if p.store == nil {
		return domain.PlayerRecord{}, ErrNotEnabled
	}
	return p.store.SetLevel(ctx, hp.ID(), hp.Name(), level)
}

// Top returns the leaderboard straight from storage
func (p *Plugin) Top(ctx context.Context, limit int) []domain.PlayerRecord {
	if p.store == nil {
		return []domain.PlayerRecord{}
	}
	return p.store.Top(ctx, limit)
}
