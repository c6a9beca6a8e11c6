package domain

import "errors"

// Error message string constants
const (
	ErrMsgStorageUnavailable = "storage unavailable"
	ErrMsgPlayerNotFound     = "player not found"
	ErrMsgInvalidLevel       = "level must be at least 1"
	ErrMsgLevelUnreachable   = "level is beyond the reachable maximum"
	ErrMsgUnknownStatistic   = "unknown statistic"
	ErrMsgUnknownMaterial    = "unknown material"
	ErrMsgUnknownEntity      = "unknown entity type"
	ErrMsgQualifierConflict  = "material and entity are mutually exclusive"
	ErrMsgQualifierArity     = "qualifier does not match statistic type"
	ErrMsgStatisticLookup    = "statistic not available"
)

var (
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
	ErrPlayerNotFound     = errors.New(ErrMsgPlayerNotFound)
	ErrInvalidLevel       = errors.New(ErrMsgInvalidLevel)
	ErrLevelUnreachable   = errors.New(ErrMsgLevelUnreachable)
	ErrUnknownStatistic   = errors.New(ErrMsgUnknownStatistic)
	ErrUnknownMaterial    = errors.New(ErrMsgUnknownMaterial)
	ErrUnknownEntity      = errors.New(ErrMsgUnknownEntity)
	ErrQualifierConflict  = errors.New(ErrMsgQualifierConflict)
	ErrQualifierArity     = errors.New(ErrMsgQualifierArity)
	ErrStatisticLookup    = errors.New(ErrMsgStatisticLookup)
)
