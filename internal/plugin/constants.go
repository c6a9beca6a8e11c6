package plugin

// RecomputeConcurrency bounds parallel statistic reads during a recompute pass
const RecomputeConcurrency = 8

// Log messages
const (
	LogMsgPluginEnabled        = "PlayerLevels plugin enabled"
	LogMsgPluginDisabled       = "PlayerLevels plugin disabled"
	LogMsgConfigReloaded       = "PlayerLevels configuration reloaded"
	LogMsgConfigInvalid        = "Invalid configuration, using defaults"
	LogMsgDefaultConfigWritten = "Wrote default configuration"
	LogMsgStorageFailed        = "Failed to initialize database connection"
	LogMsgStorageReady         = "Database connection established"
	LogMsgStorageChanged       = "Storage settings changed, restart to apply"
	LogMsgRecomputeFinished    = "Recomputed online players"
	LogMsgCurveInvalid         = "Invalid leveling curve, keeping previous"
	LogMsgFirstJoin            = "Computed level for new player"
)
