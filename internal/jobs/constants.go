package jobs

// Log messages
const (
	LogMsgJobScheduled    = "Background job scheduled"
	LogMsgJobEnqueued     = "Background job enqueued"
	LogMsgJobDropped      = "Background job dropped, worker queue full"
	LogMsgInvalidCronExpr = "Invalid cron expression"
	LogMsgJobsStopped     = "Background jobs stopped"
)

// Error contexts
const (
	ErrContextCronSchedule = "failed to schedule cron job"
)
