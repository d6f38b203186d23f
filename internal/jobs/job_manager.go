package jobs

import (
	"fmt"
)

// job is a scheduled background task.
type job interface {
	Start() error
	Stop()
}

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	jobs []job
}

func NewJobManager(outboxRelayJob *OutboxRelayJob) *JobManager {
	return &JobManager{jobs: []job{outboxRelayJob}}
}

// StartAll starts the jobs in order. If one fails, the ones already started are stopped.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs {
		j.Stop()
	}
}
