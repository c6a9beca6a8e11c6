// Package command implements the in-game level and leveltop commands.
package command

import (
	"context"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/host"
	"github.com/osse101/PlayerLevels_Go/internal/metrics"
)

// Levels is what the commands need from the plugin
type Levels interface {
	Enabled() bool
	Progress(ctx context.Context, hp host.Player) (domain.PlayerProgress, bool)
	SetLevel(ctx context.Context, hp host.Player, level int) (domain.PlayerRecord, error)
	Top(ctx context.Context, limit int) []domain.PlayerRecord
	Reload(ctx context.Context) error
}

// Registrar accepts command handlers by name
type Registrar interface {
	RegisterCommand(name string, h host.CommandHandler)
}

// Register binds both commands
func Register(r Registrar, levels Levels, server host.Server, sched host.Scheduler) {
	r.RegisterCommand(NameLevel, NewLevel(levels, server, sched))
	r.RegisterCommand(NameLevelTop, NewLevelTop(levels, sched))
}

// reply sends lines to sender on the main loop
func reply(sched host.Scheduler, sender host.CommandSender, lines ...string) {
	sched.RunSync(func() {
		for _, line := range lines {
			sender.SendMessage(line)
		}
	})
}

func countExecution(name string) {
	metrics.CommandsExecuted.WithLabelValues(name).Inc()
}
