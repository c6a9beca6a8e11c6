// Package host describes the game server the plugin runs inside.
package host

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

// CommandSender is anything that can run a command and read replies
type CommandSender interface {
	Name() string
	SendMessage(msg string)
	HasPermission(node string) bool
}

// Player is an online player
type Player interface {
	CommandSender
	ID() uuid.UUID
	// Statistic returns the counter for statistic, narrowed by q when set
	Statistic(statistic string, q domain.Qualifier) (int, error)
}

// Server exposes the online roster and the console
type Server interface {
	OnlinePlayers() []Player
	Player(id uuid.UUID) (Player, bool)
	// PlayerByName matches online players case-insensitively
	PlayerByName(name string) (Player, bool)
	DispatchConsoleCommand(command string) error
}

// Task is a unit of background work
type Task func(ctx context.Context)

// Scheduler runs work off and on the server main loop
type Scheduler interface {
	RunAsync(task Task)
	// RunRepeatingAsync runs task after delay and then every interval until cancel is called
	RunRepeatingAsync(delay, interval time.Duration, task Task) (cancel func())
	// RunSync runs task on the main loop, where player and console calls are safe
	RunSync(task func())
}

// CommandHandler executes one registered command and offers tab completions
type CommandHandler interface {
	Execute(ctx context.Context, sender CommandSender, args []string)
	Complete(sender CommandSender, args []string) []string
}
