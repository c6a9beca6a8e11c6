package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

var exampleWeights = []domain.StatisticWeight{
	{Statistic: "STAT_A", Qualifier: domain.NoQualifier, Weight: 2.0},
	{Statistic: "STAT_B", Qualifier: domain.Material("MATERIAL_X"), Weight: 0.5},
}

func TestMapper_Compute(t *testing.T) {
	lookup := func(statistic string, q domain.Qualifier) (int, error) {
		switch statistic {
		case "STAT_A":
			assert.True(t, q.IsZero())
			return 10, nil
		case "STAT_B":
			assert.Equal(t, domain.Material("MATERIAL_X"), q)
			return 4, nil
		}
		return 0, nil
	}

	got := NewMapper().Compute(context.Background(), "Steve", exampleWeights, lookup)

	assert.InDelta(t, 22.0, got, 1e-9)
}

func TestMapper_Compute_FailedLookupContributesZero(t *testing.T) {
	lookup := func(statistic string, _ domain.Qualifier) (int, error) {
		if statistic == "STAT_B" {
			return 0, errors.New("statistic not tracked")
		}
		return 10, nil
	}

	got := NewMapper().Compute(context.Background(), "Steve", exampleWeights, lookup)

	assert.InDelta(t, 20.0, got, 1e-9)
}

func TestMapper_Compute_RecoversPanickingLookup(t *testing.T) {
	lookup := func(statistic string, _ domain.Qualifier) (int, error) {
		if statistic == "STAT_A" {
			panic("host blew up")
		}
		return 4, nil
	}

	got := NewMapper().Compute(context.Background(), "Steve", exampleWeights, lookup)

	assert.InDelta(t, 2.0, got, 1e-9)
}

func TestMapper_Compute_NeverNegative(t *testing.T) {
	weights := []domain.StatisticWeight{
		{Statistic: "STAT_A", Weight: 1},
		{Statistic: "STAT_B", Weight: -3},
	}
	lookup := func(statistic string, _ domain.Qualifier) (int, error) {
		if statistic == "STAT_A" {
			return -50, nil
		}
		return 10, nil
	}

	got := NewMapper().Compute(context.Background(), "Steve", weights, lookup)

	assert.Equal(t, 0.0, got)
}

func TestMapper_Compute_NoWeights(t *testing.T) {
	called := false
	lookup := func(string, domain.Qualifier) (int, error) {
		called = true
		return 1, nil
	}

	assert.Equal(t, 0.0, NewMapper().Compute(context.Background(), "Steve", nil, lookup))
	assert.False(t, called)
}
