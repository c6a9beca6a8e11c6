package local

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/PlayerLevels_Go/internal/host"
)

// ErrUnknownCommand is returned for console commands nobody registered
var ErrUnknownCommand = errors.New("unknown command")

// JoinListener is told about players entering the server
type JoinListener func(p host.Player)

// Server is an in-memory host.Server with a console command registry
type Server struct {
	console *Console

	mu        sync.RWMutex
	players   map[uuid.UUID]*Player
	commands  map[string]host.CommandHandler
	onJoin    []JoinListener
	history   []string
	consoleMu sync.Mutex
}

// NewServer creates an empty server whose console replies go to console
func NewServer(console *Console) *Server {
	if console == nil {
		console = NewConsole(nil)
	}
	return &Server{
		console:  console,
		players:  make(map[uuid.UUID]*Player),
		commands: make(map[string]host.CommandHandler),
	}
}

// Console returns the console sender
func (s *Server) Console() *Console {
	return s.console
}

// OnJoin registers a join listener
func (s *Server) OnJoin(l JoinListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onJoin = append(s.onJoin, l)
}

// Join puts p online and notifies join listeners
func (s *Server) Join(p *Player) {
	s.mu.Lock()
	s.players[p.ID()] = p
	listeners := append([]JoinListener(nil), s.onJoin...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(p)
	}
}

// Quit takes the player offline
func (s *Server) Quit(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
}

// OnlinePlayers implements host.Server, sorted by name
func (s *Server) OnlinePlayers() []host.Player {
	s.mu.RLock()
	out := make([]host.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Player implements host.Server
func (s *Server) Player(id uuid.UUID) (host.Player, bool) {
	p, ok := s.LocalPlayer(id)
	if !ok {
		return nil, false
	}
	return p, true
}

// LocalPlayer returns the concrete online player
func (s *Server) LocalPlayer(id uuid.UUID) (*Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	return p, ok
}

// PlayerByName implements host.Server
func (s *Server) PlayerByName(name string) (host.Player, bool) {
	p, ok := s.LocalPlayerByName(name)
	if !ok {
		return nil, false
	}
	return p, true
}

// LocalPlayerByName returns the concrete online player with name
func (s *Server) LocalPlayerByName(name string) (*Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.players {
		if strings.EqualFold(p.Name(), name) {
			return p, true
		}
	}
	return nil, false
}

// RegisterCommand binds a command name (case-insensitive) to a handler
func (s *Server) RegisterCommand(name string, h host.CommandHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands[strings.ToLower(name)] = h
}

// Execute runs a command line as sender
func (s *Server) Execute(ctx context.Context, sender host.CommandSender, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	s.mu.RLock()
	h, ok := s.commands[strings.ToLower(fields[0])]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}
	h.Execute(ctx, sender, fields[1:])
	return nil
}

// Complete returns tab completions for a partial command line
func (s *Server) Complete(sender host.CommandSender, line string) []string {
	fields := strings.Fields(line)
	if strings.HasSuffix(line, " ") {
		fields = append(fields, "")
	}
	if len(fields) < 2 {
		return nil
	}
	s.mu.RLock()
	h, ok := s.commands[strings.ToLower(fields[0])]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	return h.Complete(sender, fields[1:])
}

// DispatchConsoleCommand implements host.Server. Every command is recorded;
// registered ones are executed as the console.
func (s *Server) DispatchConsoleCommand(command string) error {
	s.consoleMu.Lock()
	s.history = append(s.history, command)
	s.consoleMu.Unlock()

	return s.Execute(context.Background(), s.console, command)
}

// DispatchedCommands returns every console command seen so far
func (s *Server) DispatchedCommands() []string {
	s.consoleMu.Lock()
	defer s.consoleMu.Unlock()
	return append([]string(nil), s.history...)
}
