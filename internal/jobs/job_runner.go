package jobs

import (
	"context"
	"errors"

	"pizzapos-backend/internal/config"
	"pizzapos-backend/internal/logger"
	"pizzapos-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	backupSvc service.BackupService
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(backupSvc service.BackupService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		backupSvc: backupSvc,
		config:    cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// SendTelegramBackup pushes the nightly JSON snapshot to the configured chat.
// A shop that never configured the bot is not an error worth waking anyone up
// for.
func (jr *JobRunner) SendTelegramBackup() {
	jr.runWithRecovery("SendTelegramBackup", func() {
		err := jr.backupSvc.SendToTelegram(context.Background())
		if errors.Is(err, service.ErrTelegramNotConfigured) {
			logger.Debug("Telegram backup skipped: bot not configured")
			return
		}
		if err != nil {
			logger.Error("Telegram backup failed", "error", err)
		}
	})
}
