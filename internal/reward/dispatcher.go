package reward

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/host"
	"github.com/osse101/PlayerLevels_Go/internal/logger"
	"github.com/osse101/PlayerLevels_Go/internal/metrics"
)

// Log messages
const (
	LogMsgRewardGranted       = "Level reward granted"
	LogMsgRewardCommandFailed = "Reward command failed"
	LogMsgRewardPlayerOffline = "Player offline, reward message not delivered"
)

// Dispatcher grants the configured reward when a level is explicitly assigned
type Dispatcher struct {
	server host.Server
	sched  host.Scheduler

	mu    sync.RWMutex
	rules map[int]domain.RewardRule
}

// NewDispatcher creates a Dispatcher with an initial rule set
func NewDispatcher(server host.Server, sched host.Scheduler, rules map[int]domain.RewardRule) *Dispatcher {
	d := &Dispatcher{server: server, sched: sched}
	d.SetRules(rules)
	return d
}

// SetRules replaces the rule set, e.g. after a config reload
func (d *Dispatcher) SetRules(rules map[int]domain.RewardRule) {
	copied := make(map[int]domain.RewardRule, len(rules))
	for level, rule := range rules {
		copied[level] = rule
	}
	d.mu.Lock()
	d.rules = copied
	d.mu.Unlock()
}

// Rule returns the rule keyed by level, if any
func (d *Dispatcher) Rule(level int) (domain.RewardRule, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rule, ok := d.rules[level]
	return rule, ok
}

// LevelSet implements player.LevelListener
func (d *Dispatcher) LevelSet(ctx context.Context, rec domain.PlayerRecord) {
	d.Check(ctx, rec.ID, rec.Name, rec.Level)
}

// Check fires the rule for exactly this level. Commands run on the console and
// the message goes to the player when online; both happen on the main loop.
// It reports whether a rule matched.
func (d *Dispatcher) Check(ctx context.Context, id uuid.UUID, name string, level int) bool {
	rule, ok := d.Rule(level)
	if !ok {
		return false
	}

	log := logger.FromContext(ctx).With(logger.AttrKeyPlayerID, id, logger.AttrKeyPlayerName, name, "level", level)
	commands := make([]string, len(rule.Commands))
	for i, cmd := range rule.Commands {
		commands[i] = strings.ReplaceAll(cmd, domain.PlayerPlaceholder, name)
	}
	message := TranslateColorCodes(rule.Message)

	d.sched.RunSync(func() {
		for _, cmd := range commands {
			if err := d.server.DispatchConsoleCommand(cmd); err != nil {
				log.Warn(LogMsgRewardCommandFailed, "command", cmd, "error", err)
			}
		}
		if message == "" {
			return
		}
		p, online := d.server.Player(id)
		if !online {
			log.Debug(LogMsgRewardPlayerOffline)
			return
		}
		p.SendMessage(message)
	})

	metrics.RewardsDispatched.WithLabelValues(strconv.Itoa(level)).Inc()
	log.Info(LogMsgRewardGranted, "commands", len(commands))
	return true
}
