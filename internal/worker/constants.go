package worker

// Log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgPoolStopped       = "Job rejected, worker pool stopped"
)

// Test constants
const (
	TestWorkerCount     = 2
	TestQueueSize       = 10
	TestJobWaitTimeout  = 2000 // milliseconds
	TestExpectedJobRuns = 2
)
