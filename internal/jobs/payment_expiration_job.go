package jobs

import (
	"context"
	"log/slog"
	"time"

	"handmade/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentExpirationJob manages the scheduled sweep of overdue payments.
// Runs every minute to expire pending payments whose deadline has passed.
type PaymentExpirationJob struct {
	handler commands.ExpirePaymentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentExpirationJob creates a new job for expiring overdue payments.
// Uses ExpirePaymentsCommandHandler to process the sweep every minute.
func NewPaymentExpirationJob(handler commands.ExpirePaymentsCommandHandler, logger *slog.Logger) *PaymentExpirationJob {
	return &PaymentExpirationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_expiration_job"),
	}
}

// Start begins the payment expiration job to run every minute.
func (j *PaymentExpirationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpirePaymentsCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build payment expiration command", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Payment expiration job failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired overdue payments", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment expiration job started (running every minute)")
	return nil
}

// Stop stops the payment expiration job.
func (j *PaymentExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment expiration job stopped")
}
