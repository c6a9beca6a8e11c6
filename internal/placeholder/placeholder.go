// Package placeholder expands the playerlevels_* text placeholders.
package placeholder

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/leveling"
)

// Identifier is the placeholder namespace, as in %playerlevels_level%
const Identifier = "playerlevels"

// Supported placeholder names
const (
	Level    = "level"
	XP       = "xp"
	XPNeeded = "xp_needed"
)

// Records is the read side of the player store
type Records interface {
	Get(ctx context.Context, id uuid.UUID) (domain.PlayerRecord, bool)
	Curve() leveling.Curve
}

// Expansion answers placeholder requests from cached or stored records
type Expansion struct {
	records Records
}

// New creates an Expansion
func New(records Records) *Expansion {
	return &Expansion{records: records}
}

// Names lists the supported placeholders
func Names() []string {
	return []string{Level, XP, XPNeeded}
}

// Request resolves one placeholder for a player. Unknown names are not handled.
// Players without a record get level 1, zero experience and the first tier cost.
func (e *Expansion) Request(ctx context.Context, id uuid.UUID, name string) (string, bool) {
	switch name {
	case Level, XP, XPNeeded:
	default:
		return "", false
	}

	curve := e.records.Curve()
	rec, ok := e.records.Get(ctx, id)
	switch name {
	case Level:
		if !ok {
			return "1", true
		}
		return strconv.Itoa(rec.Level), true
	case XP:
		if !ok {
			return "0", true
		}
		return fmt.Sprintf("%.0f", rec.Experience), true
	default:
		if !ok {
			return strconv.FormatFloat(curve.BaseExperience, 'f', -1, 64), true
		}
		return fmt.Sprintf("%.0f", curve.ExperienceToNext(rec.Experience)), true
	}
}
