package leveling_bench

import (
	"testing"

	"github.com/osse101/PlayerLevels_Go/internal/leveling"
)

var sinkLevel int
var sinkXP float64

func BenchmarkLevelFor(b *testing.B) {
	c := leveling.DefaultCurve()
	xp := c.MinExperienceForLevel(40) + 1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkLevel = c.LevelFor(xp)
	}
}

func BenchmarkLevelForFlatCurve(b *testing.B) {
	// Flat tiers are the worst case for the walk: one step per level
	c := leveling.Curve{BaseExperience: 100, Multiplier: 1}
	xp := c.MinExperienceForLevel(5000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkLevel = c.LevelFor(xp)
	}
}

func BenchmarkExperienceToNext(b *testing.B) {
	c := leveling.DefaultCurve()
	xp := c.MinExperienceForLevel(25) + 10

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkXP = c.ExperienceToNext(xp)
	}
}
