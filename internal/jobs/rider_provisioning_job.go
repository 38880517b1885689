package jobs

import (
	"context"
	"log/slog"
	"time"

	"parceltrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultRiderProvisioningSchedule runs the repair pass every minute.
	DefaultRiderProvisioningSchedule = "0 * * * * *"

	riderProvisioningBatchSize = 100
	riderProvisioningTimeout   = 30 * time.Second
)

type riderUserProvisioner interface {
	Handle(ctx context.Context, cmd commands.ProvisionMissingRiderUsersCommand) (commands.ProvisionReport, error)
}

// RiderProvisioningJob gives every active rider a rider account when the
// provisioning done at activation failed.
type RiderProvisioningJob struct {
	handler  riderUserProvisioner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRiderProvisioningJob creates the job. schedule is a six-field cron
// expression with seconds; empty selects DefaultRiderProvisioningSchedule.
func NewRiderProvisioningJob(handler riderUserProvisioner, schedule string, logger *slog.Logger) *RiderProvisioningJob {
	if schedule == "" {
		schedule = DefaultRiderProvisioningSchedule
	}
	return &RiderProvisioningJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "rider_provisioning_job"),
	}
}

// Start schedules the repair pass.
func (j *RiderProvisioningJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider provisioning job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *RiderProvisioningJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rider provisioning job stopped")
}

func (j *RiderProvisioningJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), riderProvisioningTimeout)
	defer cancel()

	_, _ = j.RunOnce(ctx)
}

// RunOnce executes a single repair pass and logs its outcome.
func (j *RiderProvisioningJob) RunOnce(ctx context.Context) (commands.ProvisionReport, error) {
	cmd, err := commands.NewProvisionMissingRiderUsersCommand(riderProvisioningBatchSize)
	if err != nil {
		return commands.ProvisionReport{}, err
	}

	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Rider provisioning job failed", "error", err)
		return report, err
	}

	if report.Err != nil {
		j.logger.ErrorContext(ctx, "Some rider accounts were not provisioned",
			"checked", report.Checked, "provisioned", report.Provisioned, "error", report.Err)
	} else if report.Provisioned > 0 {
		j.logger.InfoContext(ctx, "Rider accounts provisioned",
			"checked", report.Checked, "provisioned", report.Provisioned)
	}

	return report, nil
}
