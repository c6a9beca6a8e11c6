package domain

import (
	"github.com/google/uuid"
)

// PlayerRecord is the persisted leveling state of one player.
// Level is always derived from Experience by the leveling curve when written
// through the store.
type PlayerRecord struct {
	ID         uuid.UUID `json:"uuid"`
	Name       string    `json:"name"`
	Experience float64   `json:"xp"`
	Level      int       `json:"level"`
}

// PlayerProgress is a PlayerRecord plus the experience still missing for the next level
type PlayerProgress struct {
	PlayerRecord
	ExperienceToNext float64 `json:"xp_to_next"`
}

// MaxNameLength is the widest display name the player_levels table accepts
const MaxNameLength = 16

// TruncateName clips a display name to MaxNameLength runes
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxNameLength {
		return name
	}
	return string(runes[:MaxNameLength])
}

// Leaderboard sizes accepted by commands and the API
const (
	DefaultLeaderboardLimit = 10
	MinLeaderboardLimit     = 1
	MaxLeaderboardLimit     = 100
)

// ClampLeaderboardLimit bounds limit to MinLeaderboardLimit..MaxLeaderboardLimit
func ClampLeaderboardLimit(limit int) int {
	return max(MinLeaderboardLimit, min(MaxLeaderboardLimit, limit))
}
