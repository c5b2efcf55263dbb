package worker

import "time"

// Pool defaults
const (
	DefaultWorkers    = 2
	DefaultQueueSize  = 16
	DefaultJobTimeout = 2 * time.Minute
)

// Log messages
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobCompleted = "Worker job completed"
	LogMsgWorkerJobPanicked  = "Worker job panicked"
	LogMsgQueueFull          = "Worker queue full, job dropped"
	LogMsgPoolStopping       = "Worker pool stopping"
)

// UnnamedJob labels jobs that do not implement Named
const UnnamedJob = "unnamed"
