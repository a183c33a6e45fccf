package jobs

import (
	"context"
	"log/slog"

	"github.com/ezyy-cloud/rentals-sub000/internal/config"
	"github.com/ezyy-cloud/rentals-sub000/internal/logger"
	"github.com/ezyy-cloud/rentals-sub000/internal/service"
)

// JobRunner coordinates all scheduled jobs.
type JobRunner struct {
	reminderSvc service.ReminderService
	config      *config.Config
	log         *slog.Logger
}

func NewJobRunner(reminderSvc service.ReminderService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		reminderSvc: reminderSvc,
		config:      cfg,
		log:         logger.WithComponent("jobs"),
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so a bad sweep
// cannot take down the scheduler.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			jr.log.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	jr.log.Info("Starting job", "job", jobName)
	jobFunc()
	jr.log.Info("Job completed", "job", jobName)
}

// RunReminderSweep runs one full reminder sweep over devices and rentals.
func (jr *JobRunner) RunReminderSweep() {
	jr.runWithRecovery("RunReminderSweep", func() {
		ctx := context.Background()

		result, err := jr.reminderSvc.RunSweep(ctx)
		if err != nil {
			jr.log.Error("Reminder sweep failed", "error", err)
			return
		}
		jr.log.Info("Reminder sweep finished",
			"evaluated", result.Evaluated,
			"inserted", result.Inserted)
	})
}
