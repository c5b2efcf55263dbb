package domain

// Admin action event types published after every successful mutation
const (
	EventTypeCountdownCreated = "countdown.created"
	EventTypeCountdownUpdated = "countdown.updated"
	EventTypeCountdownDeleted = "countdown.deleted"

	EventTypeFounderPackUpdated = "founder_pack.updated"
	EventTypeGoalCreated        = "community_goal.created"
	EventTypeGoalUpdated        = "community_goal.updated"
	EventTypeGoalDeleted        = "community_goal.deleted"

	EventTypeTapsDeleted      = "tapathon.taps_deleted"
	EventTypeTapGoalCreated   = "tapathon.goal_created"
	EventTypeTapGoalUpdated   = "tapathon.goal_updated"
	EventTypeTapGoalsDeleted  = "tapathon.goals_deleted"
	EventTypeTapRewardUpdated = "tapathon.reward_updated"
	EventTypeTapRewardDeleted = "tapathon.reward_deleted"

	EventTypeImageUploaded = "image.uploaded"
	EventTypeImageUpdated  = "image.updated"
	EventTypeImageDeleted  = "image.deleted"

	EventTypeAdminLogin  = "admin.login"
	EventTypeAdminLogout = "admin.logout"
)

// AllAdminEventTypes lists every admin action type, used by subscribers that record everything
var AllAdminEventTypes = []string{
	EventTypeCountdownCreated, EventTypeCountdownUpdated, EventTypeCountdownDeleted,
	EventTypeFounderPackUpdated, EventTypeGoalCreated, EventTypeGoalUpdated, EventTypeGoalDeleted,
	EventTypeTapsDeleted, EventTypeTapGoalCreated, EventTypeTapGoalUpdated, EventTypeTapGoalsDeleted,
	EventTypeTapRewardUpdated, EventTypeTapRewardDeleted,
	EventTypeImageUploaded, EventTypeImageUpdated, EventTypeImageDeleted,
	EventTypeAdminLogin, EventTypeAdminLogout,
}

// DestructiveEventTypes are the actions that remove data
var DestructiveEventTypes = []string{
	EventTypeCountdownDeleted, EventTypeGoalDeleted, EventTypeTapsDeleted,
	EventTypeTapGoalsDeleted, EventTypeTapRewardDeleted, EventTypeImageDeleted,
}

// Entity type names used in admin actions
const (
	EntityCountdownEvent = "countdown_event"
	EntityFounderPack    = "founder_pack"
	EntityCommunityGoal  = "community_goal"
	EntityTapRecord      = "tap_record"
	EntityTapGoal        = "tap_goal"
	EntityTapReward      = "tap_reward"
	EntityImage          = "image"
	EntitySession        = "session"
)
