package player

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/leveling"
	"github.com/osse101/PlayerLevels_Go/internal/logger"
	"github.com/osse101/PlayerLevels_Go/internal/metrics"
	"github.com/osse101/PlayerLevels_Go/internal/repository"
)

// LevelListener is notified after a level has been assigned explicitly
type LevelListener interface {
	LevelSet(ctx context.Context, rec domain.PlayerRecord)
}

// Store is the single owner of player records: a bounded read cache in front
// of persistent storage. Storage failures are logged and counted, never returned.
type Store struct {
	repo  repository.Player
	cache *recordCache
	locks stripedLock

	mu       sync.RWMutex
	curve    leveling.Curve
	listener LevelListener
}

// NewStore creates a Store over repo. cacheSize <= 0 uses DefaultCacheSize.
func NewStore(repo repository.Player, curve leveling.Curve, cacheSize int) (*Store, error) {
	cache, err := newRecordCache(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create player cache: %w", err)
	}
	return &Store{repo: repo, cache: cache, curve: curve}, nil
}

// SetListener registers the receiver of SetLevel notifications
func (s *Store) SetListener(l LevelListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// SetCurve swaps the leveling curve used for subsequent writes
func (s *Store) SetCurve(c leveling.Curve) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.curve = c
}

// Curve returns the active leveling curve
func (s *Store) Curve() leveling.Curve {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.curve
}

// Get returns the record for id, reading through to storage on a cache miss.
// A storage miss or failure yields (zero, false) and caches nothing.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (domain.PlayerRecord, bool) {
	if rec, ok := s.cache.Get(id); ok {
		return rec, true
	}

	mu := s.locks.forID(id)
	mu.Lock()
	defer mu.Unlock()

	// a writer may have filled the entry while we waited
	if rec, ok := s.cache.lru.Peek(id); ok {
		return rec, true
	}

	stored, err := s.repo.GetPlayer(ctx, id)
	s.record(ctx, OpGet, id, err)
	if err != nil || stored == nil {
		return domain.PlayerRecord{}, false
	}
	s.cache.Set(*stored)
	return *stored, true
}

// Upsert records experience for id, deriving the level from the active curve.
// The cache is updated even if the storage write fails. Infinite experience is
// refused: nothing is written and the previous record, if any, is returned.
func (s *Store) Upsert(ctx context.Context, id uuid.UUID, name string, experience float64) domain.PlayerRecord {
	if math.IsInf(experience, 0) {
		logger.FromContext(ctx).Warn(LogMsgExperienceRejected,
			logger.AttrKeyPlayerID, id.String(), "experience", experience)
		if rec, ok := s.Get(ctx, id); ok {
			return rec
		}
		return domain.PlayerRecord{ID: id, Name: domain.TruncateName(name), Level: 1}
	}

	mu := s.locks.forID(id)
	mu.Lock()
	defer mu.Unlock()

	return s.upsertLocked(ctx, id, name, experience)
}

// upsertLocked expects finite experience; NaN and negatives become 0
func (s *Store) upsertLocked(ctx context.Context, id uuid.UUID, name string, experience float64) domain.PlayerRecord {
	if !(experience > 0) {
		experience = 0
	}
	rec := domain.PlayerRecord{
		ID:         id,
		Name:       domain.TruncateName(name),
		Experience: experience,
		Level:      s.Curve().LevelFor(experience),
	}
	s.cache.Set(rec)

	err := s.repo.UpsertPlayer(ctx, rec)
	s.record(ctx, OpUpsert, id, err)
	return rec
}

// SetLevel assigns level by writing the minimum experience for it, then
// notifies the listener with the resulting record.
func (s *Store) SetLevel(ctx context.Context, id uuid.UUID, name string, level int) (domain.PlayerRecord, error) {
	if level < 1 {
		return domain.PlayerRecord{}, domain.ErrInvalidLevel
	}
	experience, ok := s.Curve().ExperienceForLevel(level)
	if !ok {
		return domain.PlayerRecord{}, fmt.Errorf("%w: %d", domain.ErrLevelUnreachable, level)
	}

	mu := s.locks.forID(id)
	mu.Lock()
	rec := s.upsertLocked(ctx, id, name, experience)
	mu.Unlock()

	s.mu.RLock()
	l := s.listener
	s.mu.RUnlock()
	if l != nil {
		l.LevelSet(ctx, rec)
	}
	return rec, nil
}

// Top returns up to limit records by level then experience, straight from storage
func (s *Store) Top(ctx context.Context, limit int) []domain.PlayerRecord {
	if limit <= 0 {
		return []domain.PlayerRecord{}
	}
	top, err := s.repo.GetTopPlayers(ctx, limit)
	s.record(ctx, OpTop, uuid.Nil, err)
	if err != nil || top == nil {
		return []domain.PlayerRecord{}
	}
	return top
}

// FindByName looks a player up by display name, case-insensitively.
// A cached record wins over the stored row for the same identity.
func (s *Store) FindByName(ctx context.Context, name string) (domain.PlayerRecord, bool) {
	stored, err := s.repo.GetPlayerByName(ctx, name)
	s.record(ctx, OpFindByName, uuid.Nil, err)
	if err == nil && stored != nil {
		if rec, ok := s.cache.lru.Peek(stored.ID); ok {
			return rec, true
		}
		return *stored, true
	}
	return s.cache.FindByName(name)
}

// SaveAll writes every cached record back to storage and returns how many rows
// were updated. Records without an existing row are not inserted.
func (s *Store) SaveAll(ctx context.Context) int {
	log := logger.FromContext(ctx)
	saved := 0
	for _, rec := range s.cache.Snapshot() {
		ok, err := s.repo.UpdatePlayer(ctx, rec)
		s.record(ctx, OpUpdate, rec.ID, err)
		if err != nil {
			continue
		}
		if !ok {
			log.Debug(LogMsgSaveAllSkipped, logger.AttrKeyPlayerID, rec.ID)
			continue
		}
		saved++
	}
	log.Info(LogMsgSaveAllFinished, "saved", saved, "cached", s.cache.Len())
	return saved
}

// Ping reports whether storage is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Close releases the underlying storage
func (s *Store) Close() error {
	return s.repo.Close()
}

// CachedCount returns the number of records held in memory
func (s *Store) CachedCount() int {
	return s.cache.Len()
}

func (s *Store) record(ctx context.Context, op string, id uuid.UUID, err error) {
	metrics.RecordStoreOperation(op, err)
	if err == nil {
		return
	}
	attrs := []any{logger.AttrKeyOperation, op, "error", err}
	if id != uuid.Nil {
		attrs = append(attrs, logger.AttrKeyPlayerID, id)
	}
	logger.FromContext(ctx).Error(LogMsgStorageFailed, attrs...)
}
