package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "Steve", TruncateName("Steve"))
	assert.Equal(t, "ABCDEFGHIJKLMNOP", TruncateName("ABCDEFGHIJKLMNOPQRS"))
	assert.Equal(t, "ÄÖÜäöüÄÖÜäöüÄÖÜä", TruncateName("ÄÖÜäöüÄÖÜäöüÄÖÜäöü"))
}

func TestClampLeaderboardLimit(t *testing.T) {
	assert.Equal(t, MinLeaderboardLimit, ClampLeaderboardLimit(-5))
	assert.Equal(t, 42, ClampLeaderboardLimit(42))
	assert.Equal(t, MaxLeaderboardLimit, ClampLeaderboardLimit(1000))
}

func TestQualifier(t *testing.T) {
	assert.True(t, NoQualifier.IsZero())
	assert.Equal(t, "material:STONE", Material("STONE").String())
	assert.Equal(t, "entity:ZOMBIE", Entity("ZOMBIE").String())
	assert.Equal(t, "MINE_BLOCK/STONE", StatisticWeight{Statistic: "MINE_BLOCK", Qualifier: Material("STONE")}.String())
}

func TestStatisticKindAccepts(t *testing.T) {
	assert.True(t, StatisticUntyped.Accepts(QualifierNone))
	assert.False(t, StatisticUntyped.Accepts(QualifierMaterial))
	assert.True(t, StatisticBlock.Accepts(QualifierMaterial))
	assert.True(t, StatisticItem.Accepts(QualifierMaterial))
	assert.False(t, StatisticItem.Accepts(QualifierEntity))
	assert.True(t, StatisticEntity.Accepts(QualifierEntity))
}

func TestSentinelErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("ctx"), ErrInvalidLevel)
	assert.ErrorIs(t, wrapped, ErrInvalidLevel)
	assert.Equal(t, ErrMsgInvalidLevel, ErrInvalidLevel.Error())
}
