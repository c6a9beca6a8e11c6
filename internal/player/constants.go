package player

// Store operation names, used for logs and metrics labels
const (
	OpGet        = "get"
	OpUpsert     = "upsert"
	OpUpdate     = "update"
	OpTop        = "top"
	OpFindByName = "find_by_name"
)

// DefaultCacheSize bounds the read cache well above expected player counts
const DefaultCacheSize = 10000

// lockStripes is the number of per-identity write locks
const lockStripes = 64

// Log messages
const (
	LogMsgStorageFailed      = "Player storage operation failed"
	LogMsgSaveAllFinished    = "Saved cached player data"
	LogMsgSaveAllSkipped     = "Cached player has no stored row, skipping"
	LogMsgExperienceRejected = "Refusing to store non-finite experience"
)
