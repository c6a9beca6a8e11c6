package handler

// Client-facing error messages. They never carry internal error details.
const (
	ErrMsgInvalidPlayerID     = "Invalid player id"
	ErrMsgInvalidPlayerName   = "Invalid player name"
	ErrMsgInvalidLimit        = "Invalid number: %s"
	ErrMsgPlayerNotFound      = "Player not found"
	ErrMsgUnknownPlaceholder  = "Unknown placeholder: %s"
	ErrMsgStorageUnavailable  = "storage unavailable"
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidRequestField = "Invalid value"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
)

// Query and path parameter names
const (
	ParamID         = "id"
	ParamName       = "name"
	ParamIdentifier = "identifier"
	QueryLimit      = "limit"
)
