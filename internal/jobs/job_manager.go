package jobs

import (
	"fmt"
	"log/slog"

	"handmade/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentExpirationJob *PaymentExpirationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expirePaymentsHandler commands.ExpirePaymentsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentExpirationJob: NewPaymentExpirationJob(expirePaymentsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentExpirationJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment expiration job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentExpirationJob.Stop()
}
