package stats

// Log messages
const (
	LogMsgStatisticLookupFailed = "Error getting statistic for player"
	LogMsgStatisticRejected     = "Invalid statistic, material, or entity in config"
)

// Rejection reasons
const (
	ReasonMissingStatistic = "statistic name is required"
	ReasonUnknownStatistic = "unknown statistic"
	ReasonUnknownMaterial  = "unknown material"
	ReasonUnknownEntity    = "unknown entity type"
	ReasonBothQualifiers   = "material and entity are mutually exclusive"
	ReasonMissingQualifier = "statistic requires a qualifier"
	ReasonWrongQualifier   = "qualifier does not match statistic type"
	ReasonInvalidWeight    = "xp-value must be a finite number"
)
