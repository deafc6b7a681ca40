// Package jobs provides the cron-scheduled background tasks of the shipment
// system. The only recurring task is the hourly overdue invoice sweep; jobs
// are managed through JobManager, which starts and stops them as a group.
package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	invoiceOverdueJob *InvoiceOverdueJob
}

// NewJobManager creates a job manager wired to the handlers the jobs execute.
func NewJobManager(
	escalateOverdueHandler commands.EscalateOverdueInvoicesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		invoiceOverdueJob: NewInvoiceOverdueJob(escalateOverdueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.invoiceOverdueJob.Start(); err != nil {
		return fmt.Errorf("failed to start invoice overdue job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.invoiceOverdueJob.Stop()
}
