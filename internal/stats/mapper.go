package stats

import (
	"context"
	"fmt"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/logger"
	"github.com/osse101/PlayerLevels_Go/internal/metrics"
)

// LookupFunc reads one statistic counter for a subject
type LookupFunc func(statistic string, q domain.Qualifier) (int, error)

// Mapper turns statistic counters into experience
type Mapper struct{}

// NewMapper creates a Mapper
func NewMapper() *Mapper {
	return &Mapper{}
}

// Compute sums count*weight over weights. A failed lookup is logged, counted
// and contributes zero; the remaining entries are still evaluated.
func (m *Mapper) Compute(ctx context.Context, subject string, weights []domain.StatisticWeight, lookup LookupFunc) float64 {
	log := logger.FromContext(ctx)

	total := 0.0
	for _, w := range weights {
		count, err := safeLookup(lookup, w)
		if err != nil {
			log.Warn(LogMsgStatisticLookupFailed,
				"statistic", w.String(),
				logger.AttrKeyPlayerName, subject,
				"error", err)
			metrics.StatisticLookupFailures.WithLabelValues(w.Statistic).Inc()
			continue
		}
		if count <= 0 {
			continue
		}
		total += float64(count) * w.Weight
	}

	if total < 0 {
		return 0
	}
	return total
}

func safeLookup(lookup LookupFunc, w domain.StatisticWeight) (count int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrStatisticLookup, r)
		}
	}()
	return lookup(w.Statistic, w.Qualifier)
}
