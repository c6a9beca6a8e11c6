// Package local is an in-process game server used by the standalone binary and tests.
package local

import (
	"crypto/md5"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

// OfflineID derives the identity an offline-mode server assigns to name
func OfflineID(name string) uuid.UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	sum[6] = sum[6]&0x0f | 0x30
	sum[8] = sum[8]&0x3f | 0x80
	return uuid.UUID(sum)
}

type statKey struct {
	statistic string
	qualifier domain.Qualifier
}

// Player is an in-memory host.Player
type Player struct {
	id   uuid.UUID
	name string

	mu          sync.Mutex
	stats       map[statKey]int
	broken      map[string]bool
	permissions map[string]bool
	op          bool
	messages    []string
}

// NewPlayer creates a player with no statistics or permissions
func NewPlayer(id uuid.UUID, name string) *Player {
	return &Player{
		id:          id,
		name:        name,
		stats:       make(map[statKey]int),
		broken:      make(map[string]bool),
		permissions: make(map[string]bool),
	}
}

// ID implements host.Player
func (p *Player) ID() uuid.UUID { return p.id }

// Name implements host.CommandSender
func (p *Player) Name() string { return p.name }

// SendMessage implements host.CommandSender
func (p *Player) SendMessage(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
}

// Messages returns everything sent to the player so far
func (p *Player) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.messages...)
}

// HasPermission implements host.CommandSender; operators hold every node
func (p *Player) HasPermission(node string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.op || p.permissions[node]
}

// Grant gives the player a permission node
func (p *Player) Grant(node string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.permissions[node] = true
}

// SetOp toggles operator status
func (p *Player) SetOp(op bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.op = op
}

// SetStatistic sets a counter
func (p *Player) SetStatistic(statistic string, q domain.Qualifier, value int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats[statKey{statistic, q}] = value
}

// AddStatistic increments a counter
func (p *Player) AddStatistic(statistic string, q domain.Qualifier, delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats[statKey{statistic, q}] += delta
}

// BreakStatistic makes every lookup of statistic fail
func (p *Player) BreakStatistic(statistic string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.broken[statistic] = true
}

// Statistic implements host.Player. Untracked counters read as zero.
func (p *Player) Statistic(statistic string, q domain.Qualifier) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.broken[statistic] {
		return 0, fmt.Errorf("%w: %s", domain.ErrStatisticLookup, statistic)
	}
	return p.stats[statKey{statistic, q}], nil
}
