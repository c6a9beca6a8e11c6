package domain

// Permission nodes checked by the command surface
const (
	PermissionAdmin       = "playerlevels.admin"
	PermissionOthers      = "playerlevels.others"
	PermissionLeaderboard = "playerlevels.leaderboard"
)
