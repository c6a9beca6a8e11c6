package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/leveling"
)

// PlayerReader is the read side of the player store
type PlayerReader interface {
	Get(ctx context.Context, id uuid.UUID) (domain.PlayerRecord, bool)
	FindByName(ctx context.Context, name string) (domain.PlayerRecord, bool)
	Top(ctx context.Context, limit int) []domain.PlayerRecord
	Curve() leveling.Curve
}

// PlaceholderResolver expands playerlevels placeholders
type PlaceholderResolver interface {
	Request(ctx context.Context, id uuid.UUID, name string) (string, bool)
}

// PlaceholderResponse is the value of one placeholder for one player
type PlaceholderResponse struct {
	Identifier string `json:"identifier"`
	Value      string `json:"value"`
}

// LeaderboardEntry is one ranked player
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	ID         string  `json:"uuid"`
	Name       string  `json:"name"`
	Level      int     `json:"level"`
	Experience float64 `json:"xp"`
}

// LeaderboardResponse is the ranked player list
type LeaderboardResponse struct {
	Limit   int                `json:"limit"`
	Players []LeaderboardEntry `json:"players"`
}

type playerNameParam struct {
	Name string `validate:"required,playername"`
}

// PlayerHandler serves player records
type PlayerHandler struct {
	players      PlayerReader
	placeholders PlaceholderResolver
}

// NewPlayerHandler creates a PlayerHandler
func NewPlayerHandler(players PlayerReader, placeholders PlaceholderResolver) *PlayerHandler {
	return &PlayerHandler{players: players, placeholders: placeholders}
}

func (h *PlayerHandler) progress(rec domain.PlayerRecord) domain.PlayerProgress {
	return domain.PlayerProgress{
		PlayerRecord:     rec,
		ExperienceToNext: h.players.Curve().ExperienceToNext(rec.Experience),
	}
}

// parseID reads the {id} path parameter, writing a 400 when it is not a UUID
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, ParamID))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlayerID)
		return uuid.Nil, false
	}
	return id, true
}

// HandleGetPlayer returns a player's level and experience
// @Summary Get player
// @Tags players
// @Produce json
// @Param id path string true "Player UUID"
// @Success 200 {object} domain.PlayerProgress
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{id} [get]
func (h *PlayerHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	rec, ok := h.players.Get(r.Context(), id)
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgPlayerNotFound)
		return
	}
	respondJSON(w, http.StatusOK, h.progress(rec))
}

// HandleGetPlayerByName looks a player up by display name, ignoring case
// @Summary Get player by name
// @Tags players
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} domain.PlayerProgress
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/by-name/{name} [get]
func (h *PlayerHandler) HandleGetPlayerByName(w http.ResponseWriter, r *http.Request) {
	param := playerNameParam{Name: chi.URLParam(r, ParamName)}
	if err := GetValidator().ValidateStruct(param); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  ErrMsgInvalidPlayerName,
			Fields: FormatValidationError(err),
		})
		return
	}
	rec, ok := h.players.FindByName(r.Context(), param.Name)
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgPlayerNotFound)
		return
	}
	respondJSON(w, http.StatusOK, h.progress(rec))
}

// HandleGetPlaceholder expands one placeholder for a player
// @Summary Expand placeholder
// @Description Supported identifiers are level, xp and xp_needed. Unknown players get defaults.
// @Tags players
// @Produce json
// @Param id path string true "Player UUID"
// @Param identifier path string true "Placeholder name"
// @Success 200 {object} PlaceholderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{id}/placeholders/{identifier} [get]
func (h *PlayerHandler) HandleGetPlaceholder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	identifier := chi.URLParam(r, ParamIdentifier)
	value, ok := h.placeholders.Request(r.Context(), id, identifier)
	if !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgUnknownPlaceholder, identifier))
		return
	}
	respondJSON(w, http.StatusOK, PlaceholderResponse{Identifier: identifier, Value: value})
}

// HandleGetLeaderboard returns the top players by level then experience
// @Summary Leaderboard
// @Tags players
// @Produce json
// @Param limit query int false "Number of players (1-100, default 10)"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func (h *PlayerHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := domain.DefaultLeaderboardLimit
	if raw := r.URL.Query().Get(QueryLimit); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidLimit, raw))
			return
		}
		limit = domain.ClampLeaderboardLimit(n)
	}

	top := h.players.Top(r.Context(), limit)
	entries := make([]LeaderboardEntry, 0, len(top))
	for i, rec := range top {
		entries = append(entries, LeaderboardEntry{
			Rank:       i + 1,
			ID:         rec.ID.String(),
			Name:       rec.Name,
			Level:      rec.Level,
			Experience: rec.Experience,
		})
	}
	respondJSON(w, http.StatusOK, LeaderboardResponse{Limit: limit, Players: entries})
}
