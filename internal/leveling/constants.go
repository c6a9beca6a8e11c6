package leveling

// Curve defaults, matching the shipped config.yml
const (
	// DefaultBaseExperience is the cost of the first tier (level 1 -> 2)
	DefaultBaseExperience = 100.0

	// DefaultMultiplier scales each following tier: cost(n) = base * multiplier^(n-1)
	DefaultMultiplier = 1.5

	// MaxLevel bounds the level walk so that degenerate curves (multiplier 1 with
	// huge experience, infinite experience) still terminate
	MaxLevel = 1 << 20
)
