package command

// Command names
const (
	NameLevel    = "level"
	NameLevelTop = "leveltop"

	SubcommandReload = "reload"
	SubcommandSet    = "set"
)

// Legacy colour codes
const (
	ColorGold   = "§6"
	ColorGray   = "§7"
	ColorGreen  = "§a"
	ColorRed    = "§c"
	ColorYellow = "§e"
	ColorWhite  = "§f"
)

// Reply messages
const (
	MsgPluginDisabled  = ColorRed + "PlayerLevels plugin is currently disabled."
	MsgPlayersOnly     = ColorRed + "This command can only be used by players."
	MsgNoPermission    = ColorRed + "You don't have permission to use this command."
	MsgReloaded        = ColorGreen + "PlayerLevels configuration reloaded!"
	MsgReloadFailed    = ColorRed + "Failed to reload PlayerLevels configuration."
	MsgSetUsage        = ColorRed + "Usage: /level set <player> <level>"
	MsgLevelTooLow     = ColorRed + "Level must be at least 1."
	MsgUnknownArgument = ColorRed + "Unknown command or player not found."
	MsgNoPlayers       = ColorYellow + "No players found."

	MsgFmtPlayerNotFound = ColorRed + "Player not found: %s"
	MsgFmtInvalidLevel   = ColorRed + "Invalid level: %s"
	MsgFmtInvalidNumber  = ColorRed + "Invalid number: %s"
	MsgFmtLevelSet       = ColorGreen + "Set %s's level to %d"
	MsgFmtLevelSetTarget = ColorGreen + "Your level has been set to %d"
	MsgFmtSetFailed      = ColorRed + "Could not set level for %s"
	MsgFmtLevelTooHigh   = ColorRed + "Level %d is beyond the highest reachable level."
	MsgFmtNoData         = ColorRed + "Could not retrieve level data for %s"

	MsgFmtLevelHeader = ColorGold + "===== %s's Level ====="
	MsgFmtLevel       = ColorYellow + "Level: " + ColorWhite + "%d"
	MsgFmtTotalXP     = ColorYellow + "Total XP: " + ColorWhite + "%.0f"
	MsgFmtXPToNext    = ColorYellow + "XP for next level: " + ColorWhite + "%.0f"

	MsgFmtTopHeader = ColorGold + "===== Top %d Players ====="
	MsgFmtTopEntry  = ColorYellow + "#%d: " + ColorWhite + "%s - " + ColorGreen + "Level %d" + ColorGray + " (%.0f XP)"
)

// Log messages
const (
	LogMsgReloadFailed   = "Config reload from command failed"
	LogMsgSetLevelFailed = "Set level from command failed"
)
