package local

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

// Shell reads operator input line by line. Besides registered commands it
// understands a few built-ins to simulate players on the local server.
type Shell struct {
	server  *Server
	runtime *Runtime
}

// NewShell creates a shell over server; commands run on the runtime main loop
func NewShell(server *Server, runtime *Runtime) *Shell {
	return &Shell{server: server, runtime: runtime}
}

const shellHelp = `built-ins:
  join <name>                       bring a player online
  quit <name>                       take a player offline
  op <name>                         grant operator status
  stat <name> <STAT[:QUALIFIER]> <n> add to a statistic (material qualifier)
  kill <name> <ENTITY> <n>          add to KILL_ENTITY for an entity
  as <name> <command...>            run a command as a player
  list                              list online players
  stop                              shut down
anything else is run as a console command`

// Run processes lines from in until EOF, "stop" or ctx is done
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		stop, err := s.Handle(ctx, scanner.Text())
		if err != nil {
			s.server.Console().SendMessage(err.Error())
		}
		if stop {
			return nil
		}
	}
	return scanner.Err()
}

// Handle processes one line and reports whether the shell should stop
func (s *Shell) Handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	console := s.server.Console()

	switch strings.ToLower(fields[0]) {
	case "stop":
		return true, nil
	case "help":
		console.SendMessage(shellHelp)
	case "list":
		names := make([]string, 0)
		for _, p := range s.server.OnlinePlayers() {
			names = append(names, p.Name())
		}
		console.SendMessage(fmt.Sprintf("%d online: %s", len(names), strings.Join(names, ", ")))
	case "join":
		if len(fields) != 2 {
			return false, errors.New("usage: join <name>")
		}
		if _, ok := s.server.LocalPlayerByName(fields[1]); ok {
			return false, fmt.Errorf("%s is already online", fields[1])
		}
		s.server.Join(NewPlayer(OfflineID(fields[1]), fields[1]))
		console.SendMessage(fields[1] + " joined the game")
	case "quit":
		p, err := s.lookup(fields, 2, "usage: quit <name>")
		if err != nil {
			return false, err
		}
		s.server.Quit(p.ID())
		console.SendMessage(p.Name() + " left the game")
	case "op":
		p, err := s.lookup(fields, 2, "usage: op <name>")
		if err != nil {
			return false, err
		}
		p.SetOp(true)
		console.SendMessage("Made " + p.Name() + " a server operator")
	case "stat":
		p, err := s.lookup(fields, 4, "usage: stat <name> <STAT[:MATERIAL]> <n>")
		if err != nil {
			return false, err
		}
		n, err := strconv.Atoi(fields[3])
		if err != nil {
			return false, fmt.Errorf("invalid amount: %s", fields[3])
		}
		stat, qualifier, _ := strings.Cut(strings.ToUpper(fields[2]), ":")
		q := domain.NoQualifier
		if qualifier != "" {
			q = domain.Material(qualifier)
		}
		p.AddStatistic(stat, q, n)
	case "kill":
		p, err := s.lookup(fields, 4, "usage: kill <name> <ENTITY> <n>")
		if err != nil {
			return false, err
		}
		n, err := strconv.Atoi(fields[3])
		if err != nil {
			return false, fmt.Errorf("invalid amount: %s", fields[3])
		}
		p.AddStatistic("KILL_ENTITY", domain.Entity(strings.ToUpper(fields[2])), n)
	case "as":
		if len(fields) < 3 {
			return false, errors.New("usage: as <name> <command...>")
		}
		p, ok := s.server.LocalPlayerByName(fields[1])
		if !ok {
			return false, fmt.Errorf("%s is not online", fields[1])
		}
		return false, s.execute(ctx, func() error {
			return s.server.Execute(ctx, p, strings.Join(fields[2:], " "))
		})
	default:
		return false, s.execute(ctx, func() error {
			return s.server.Execute(ctx, console, line)
		})
	}
	return false, nil
}

func (s *Shell) lookup(fields []string, want int, usage string) (*Player, error) {
	if len(fields) != want {
		return nil, errors.New(usage)
	}
	p, ok := s.server.LocalPlayerByName(fields[1])
	if !ok {
		return nil, fmt.Errorf("%s is not online", fields[1])
	}
	return p, nil
}

// execute runs command handlers on the main loop, as a game server would
func (s *Shell) execute(_ context.Context, fn func() error) error {
	if s.runtime == nil {
		return fn()
	}
	var err error
	s.runtime.Call(func() { err = fn() })
	return err
}
