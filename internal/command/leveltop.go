package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/host"
)

// LevelTop handles /leveltop [limit]
type LevelTop struct {
	levels Levels
	sched  host.Scheduler
}

// NewLevelTop creates the leaderboard command
func NewLevelTop(levels Levels, sched host.Scheduler) *LevelTop {
	return &LevelTop{levels: levels, sched: sched}
}

// Execute implements host.CommandHandler
func (c *LevelTop) Execute(_ context.Context, sender host.CommandSender, args []string) {
	countExecution(NameLevelTop)
	if !c.levels.Enabled() {
		sender.SendMessage(MsgPluginDisabled)
		return
	}
	if !sender.HasPermission(domain.PermissionLeaderboard) {
		sender.SendMessage(MsgNoPermission)
		return
	}

	limit := domain.DefaultLeaderboardLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			sender.SendMessage(fmt.Sprintf(MsgFmtInvalidNumber, args[0]))
			return
		}
		limit = domain.ClampLeaderboardLimit(n)
	}

	c.sched.RunAsync(func(ctx context.Context) {
		top := c.levels.Top(ctx, limit)
		lines := make([]string, 0, len(top)+1)
		lines = append(lines, fmt.Sprintf(MsgFmtTopHeader, limit))
		if len(top) == 0 {
			lines = append(lines, MsgNoPlayers)
		}
		for i, rec := range top {
			lines = append(lines, fmt.Sprintf(MsgFmtTopEntry, i+1, rec.Name, rec.Level, rec.Experience))
		}
		reply(c.sched, sender, lines...)
	})
}

// Complete implements host.CommandHandler
func (c *LevelTop) Complete(host.CommandSender, []string) []string {
	return []string{}
}
