package player

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

// UnavailableRepository stands in when storage could not be opened at startup.
// Every call fails with domain.ErrStorageUnavailable.
type UnavailableRepository struct {
	Cause error
}

func (u UnavailableRepository) err() error {
	if u.Cause == nil {
		return domain.ErrStorageUnavailable
	}
	return &unavailableError{cause: u.Cause}
}

type unavailableError struct {
	cause error
}

func (e *unavailableError) Error() string {
	return domain.ErrMsgStorageUnavailable + ": " + e.cause.Error()
}

func (e *unavailableError) Is(target error) bool {
	return target == domain.ErrStorageUnavailable
}

func (e *unavailableError) Unwrap() error {
	return e.cause
}

func (u UnavailableRepository) GetPlayer(context.Context, uuid.UUID) (*domain.PlayerRecord, error) {
	return nil, u.err()
}

func (u UnavailableRepository) GetPlayerByName(context.Context, string) (*domain.PlayerRecord, error) {
	return nil, u.err()
}

func (u UnavailableRepository) UpsertPlayer(context.Context, domain.PlayerRecord) error {
	return u.err()
}

func (u UnavailableRepository) UpdatePlayer(context.Context, domain.PlayerRecord) (bool, error) {
	return false, u.err()
}

func (u UnavailableRepository) GetTopPlayers(context.Context, int) ([]domain.PlayerRecord, error) {
	return nil, u.err()
}

func (u UnavailableRepository) Ping(context.Context) error {
	return u.err()
}

func (u UnavailableRepository) Close() error {
	return nil
}
