package worker

// Log messages
const (
	LogMsgWorkerJobFailed   = "Background job failed"
	LogMsgWorkerJobPanicked = "Background job panicked"
	LogMsgWorkerQueueFull   = "Background queue full, job dropped"
)
