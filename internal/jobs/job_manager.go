package jobs

import (
	"fmt"
	"log/slog"
)

// scheduledJob is a cron-driven job owned by the JobManager.
type scheduledJob interface {
	Start() error
	Stop()
}

// JobManager starts and stops the background reconciliation jobs together.
type JobManager struct {
	jobs   []namedJob
	logger *slog.Logger
}

type namedJob struct {
	name string
	job  scheduledJob
}

// NewJobManager wires the rider provisioning job to its command handler.
func NewJobManager(
	provisionHandler riderUserProvisioner,
	riderProvisioningSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "rider provisioning", job: NewRiderProvisioningJob(provisionHandler, riderProvisioningSchedule, logger)},
		},
		logger: logger.With("component", "job_manager"),
	}
}

// StartAll starts the jobs in order. When one fails the ones already
// started are stopped again.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		jm.logger.Info("Job started", "job", j.name)
	}
	return nil
}

// StopAll stops the jobs in reverse start order and waits for running
// executions.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
}
