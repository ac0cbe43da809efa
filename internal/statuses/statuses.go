package statuses

const (
	StatusWaitOpponent = "waiting"
	StatusActive       = "active"
	StatusCompleted    = "completed"
)
