package discord

// Friendly message constants for Discord responses
const (
	MsgPlayerNotFound = "👤 **Player Not Found**\nHave they joined the server yet?"
	MsgNoPlayers      = "No players found."
	MsgAPIUnreachable = "Error connecting to game server."
	MsgGenericError   = "❌ Something went wrong."
	MsgPong           = "Pong! 🏓"
)

// Embed colours
const (
	ColorLevel       = 0xf1c40f
	ColorLeaderboard = 0x1abc9c
)

// FooterPlayerLevels is the standard embed footer
const FooterPlayerLevels = "PlayerLevels"

// Log messages
const (
	LogMsgRetrying        = "Retrying API request"
	LogMsgRequestFailed   = "API request failed"
	LogMsgServerError     = "Server error, will retry"
	LogMsgDeferFailed     = "Failed to send deferred response"
	LogMsgEditFailed      = "Failed to edit interaction response"
	LogMsgSendFailed      = "Failed to send response"
	LogMsgCommandFailed   = "Command failed"
	LogMsgBotReady        = "Bot is ready"
	LogMsgBotRunning      = "Discord bot is now running"
	LogMsgHealthStarting  = "Starting Discord health server"
	LogMsgHealthFailed    = "Discord health server failed"
	LogMsgHealthStopFail  = "Discord health server shutdown failed"
	LogMsgCommandsChecked = "Checking Discord commands"
	LogMsgCommandsSame    = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated = "Commands updated"
)
