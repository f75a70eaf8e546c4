package scheduler

// Log messages
const (
	LogMsgShuttingDown     = "Shutting down phase scheduler"
	LogMsgTimerCancelled   = "Cancelled pending phase transition"
	LogMsgShutdownComplete = "Phase scheduler shutdown complete"
	LogMsgShutdownTimeout  = "Phase scheduler shutdown timeout"
)
