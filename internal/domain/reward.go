package domain

// PlayerPlaceholder is substituted with the player's display name in reward commands
const PlayerPlaceholder = "%player%"

// RewardRule is triggered when a player's level is explicitly set to Level
type RewardRule struct {
	Level    int      `json:"level"`
	Message  string   `json:"message"`
	Commands []string `json:"commands"`
}
