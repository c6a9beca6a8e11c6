package player

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

// FakeRepository is an in-memory repository.Player for tests in this and
// dependent packages. It counts calls so tests can observe read-through.
type FakeRepository struct {
	mu      sync.Mutex
	players map[uuid.UUID]domain.PlayerRecord
	Gets    int
	Upserts int
}

// NewFakeRepository returns an empty FakeRepository
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{players: make(map[uuid.UUID]domain.PlayerRecord)}
}

// Seed stores a record directly, bypassing counters
func (f *FakeRepository) Seed(recs ...domain.PlayerRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range recs {
		f.players[rec.ID] = rec
	}
}

// Stored returns the raw stored record
func (f *FakeRepository) Stored(id uuid.UUID) (domain.PlayerRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.players[id]
	return rec, ok
}

func (f *FakeRepository) GetPlayer(_ context.Context, id uuid.UUID) (*domain.PlayerRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Gets++
	rec, ok := f.players[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *FakeRepository) GetPlayerByName(_ context.Context, name string) (*domain.PlayerRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.players {
		if strings.EqualFold(rec.Name, name) {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *FakeRepository) UpsertPlayer(_ context.Context, rec domain.PlayerRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Upserts++
	rec.Name = domain.TruncateName(rec.Name)
	f.players[rec.ID] = rec
	return nil
}

func (f *FakeRepository) UpdatePlayer(_ context.Context, rec domain.PlayerRecord) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.players[rec.ID]; !ok {
		return false, nil
	}
	f.players[rec.ID] = rec
	return true, nil
}

func (f *FakeRepository) GetTopPlayers(_ context.Context, limit int) ([]domain.PlayerRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]domain.PlayerRecord, 0, len(f.players))
	for _, rec := range f.players {
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Level != all[j].Level {
			return all[i].Level > all[j].Level
		}
		return all[i].Experience > all[j].Experience
	})
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *FakeRepository) Ping(context.Context) error { return nil }

func (f *FakeRepository) Close() error { return nil }
