package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/host"
	"github.com/osse101/PlayerLevels_Go/internal/logger"
)

// Level handles /level, /level <player>, /level set and /level reload
type Level struct {
	levels Levels
	server host.Server
	sched  host.Scheduler
}

// NewLevel creates the level command
func NewLevel(levels Levels, server host.Server, sched host.Scheduler) *Level {
	return &Level{levels: levels, server: server, sched: sched}
}

// Execute implements host.CommandHandler
func (c *Level) Execute(ctx context.Context, sender host.CommandSender, args []string) {
	countExecution(NameLevel)
	if !c.levels.Enabled() {
		sender.SendMessage(MsgPluginDisabled)
		return
	}

	if len(args) == 0 {
		self, ok := sender.(host.Player)
		if !ok {
			sender.SendMessage(MsgPlayersOnly)
			return
		}
		c.show(sender, self)
		return
	}

	switch strings.ToLower(args[0]) {
	case SubcommandReload:
		c.reload(ctx, sender)
	case SubcommandSet:
		c.set(sender, args[1:])
	default:
		target, ok := c.server.PlayerByName(args[0])
		if !ok || !sender.HasPermission(domain.PermissionOthers) {
			sender.SendMessage(MsgUnknownArgument)
			return
		}
		c.show(sender, target)
	}
}

func (c *Level) reload(ctx context.Context, sender host.CommandSender) {
	if !sender.HasPermission(domain.PermissionAdmin) {
		sender.SendMessage(MsgNoPermission)
		return
	}
	if err := c.levels.Reload(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgReloadFailed, "error", err)
		sender.SendMessage(MsgReloadFailed)
		return
	}
	sender.SendMessage(MsgReloaded)
}

func (c *Level) set(sender host.CommandSender, args []string) {
	if !sender.HasPermission(domain.PermissionAdmin) {
		sender.SendMessage(MsgNoPermission)
		return
	}
	if len(args) < 2 {
		sender.SendMessage(MsgSetUsage)
		return
	}

	target, ok := c.server.PlayerByName(args[0])
	if !ok {
		sender.SendMessage(fmt.Sprintf(MsgFmtPlayerNotFound, args[0]))
		return
	}
	level, err := strconv.Atoi(args[1])
	if err != nil {
		sender.SendMessage(fmt.Sprintf(MsgFmtInvalidLevel, args[1]))
		return
	}
	if level < 1 {
		sender.SendMessage(MsgLevelTooLow)
		return
	}

	c.sched.RunAsync(func(ctx context.Context) {
		_, err := c.levels.SetLevel(ctx, target, level)
		if errors.Is(err, domain.ErrLevelUnreachable) {
			reply(c.sched, sender, fmt.Sprintf(MsgFmtLevelTooHigh, level))
			return
		}
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgSetLevelFailed,
				logger.AttrKeyPlayerName, target.Name(), "level", level, "error", err)
			reply(c.sched, sender, fmt.Sprintf(MsgFmtSetFailed, target.Name()))
			return
		}
		reply(c.sched, sender, fmt.Sprintf(MsgFmtLevelSet, target.Name(), level))
		reply(c.sched, target, fmt.Sprintf(MsgFmtLevelSetTarget, level))
	})
}

// show composes the progress lines off the main loop and replies on it
func (c *Level) show(sender host.CommandSender, target host.Player) {
	c.sched.RunAsync(func(ctx context.Context) {
		progress, ok := c.levels.Progress(ctx, target)
		if !ok {
			reply(c.sched, sender, fmt.Sprintf(MsgFmtNoData, target.Name()))
			return
		}
		reply(c.sched, sender,
			fmt.Sprintf(MsgFmtLevelHeader, target.Name()),
			fmt.Sprintf(MsgFmtLevel, progress.Level),
			fmt.Sprintf(MsgFmtTotalXP, progress.Experience),
			fmt.Sprintf(MsgFmtXPToNext, progress.ExperienceToNext),
		)
	})
}

// Complete implements host.CommandHandler
func (c *Level) Complete(sender host.CommandSender, args []string) []string {
	completions := []string{}
	if len(args) == 0 {
		return completions
	}
	switch {
	case len(args) == 1:
		if sender.HasPermission(domain.PermissionAdmin) {
			completions = append(completions, SubcommandReload, SubcommandSet)
		}
		if sender.HasPermission(domain.PermissionOthers) {
			completions = append(completions, c.onlineNames()...)
		}
	case len(args) == 2 && strings.EqualFold(args[0], SubcommandSet) && sender.HasPermission(domain.PermissionAdmin):
		completions = append(completions, c.onlineNames()...)
	}
	return filterPrefix(completions, args[len(args)-1])
}

func (c *Level) onlineNames() []string {
	online := c.server.OnlinePlayers()
	names := make([]string, 0, len(online))
	for _, p := range online {
		names = append(names, p.Name())
	}
	return names
}

func filterPrefix(options []string, prefix string) []string {
	if prefix == "" {
		return options
	}
	lower := strings.ToLower(prefix)
	out := options[:0]
	for _, o := range options {
		if strings.HasPrefix(strings.ToLower(o), lower) {
			out = append(out, o)
		}
	}
	return out
}
