package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// InvoiceOverdueJob runs the hourly sweep over unpaid invoices past their
// due date. Each run logs the offenders and fans out invoice_overdue
// notifications to the billing escalation roles.
type InvoiceOverdueJob struct {
	handler commands.EscalateOverdueInvoicesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewInvoiceOverdueJob creates the hourly overdue invoice sweep.
func NewInvoiceOverdueJob(
	handler commands.EscalateOverdueInvoicesCommandHandler,
	logger *slog.Logger,
) *InvoiceOverdueJob {
	return &InvoiceOverdueJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "invoice_overdue_job"),
	}
}

// Start schedules the sweep at the top of every hour and runs one sweep
// immediately so a restart never skips a cycle.
func (j *InvoiceOverdueJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Invoice overdue job started (running hourly)")

	go j.run()
	return nil
}

// Stop stops the sweep schedule.
func (j *InvoiceOverdueJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Invoice overdue job stopped")
}

func (j *InvoiceOverdueJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewEscalateOverdueInvoicesCommand(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Invoice overdue sweep could not be constructed", "error", err)
		return
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Invoice overdue sweep failed", "error", err)
	}
}
