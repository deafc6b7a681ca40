package cmd

import (
	"log/slog"
	"time"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/jobs"
	"logistics/internal/pkg/tasks"

	"gorm.io/gorm"
)

// followUpTimeout bounds every post-commit follow-up submitted to the task
// runner: notification fan-out and automatic draft invoice generation.
const followUpTimeout = 30 * time.Second

// CompositionRoot wires adapters into use case handlers. All handlers share
// one unit of work factory, one task runner and one logger.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	runner     tasks.Runner
	logger     *slog.Logger
}

// NewCompositionRoot creates the composition root over an open database
// connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		runner:     tasks.NewGoRunner(followUpTimeout, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f, c.CreateDispatchNotificationCommandHandler(), c.runner)
}

func (c *CompositionRoot) CreateTransitionJobStatusCommandHandler() commands.TransitionJobStatusCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionJobStatusCommandHandler(
		f,
		c.CreateCreateDraftInvoiceCommandHandler(),
		c.CreateDispatchNotificationCommandHandler(),
		c.runner,
	)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.CreateDispatchNotificationCommandHandler(), c.runner)
}

func (c *CompositionRoot) CreateAssignDeliveryAgentCommandHandler() commands.AssignDeliveryAgentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryAgentCommandHandler(f, c.CreateDispatchNotificationCommandHandler(), c.runner)
}

func (c *CompositionRoot) CreateDeleteJobCommandHandler() commands.DeleteJobCommandHandler {
	var f commands.JobDeletionUoWFactory = FuncJobDeletionUoWFactory(func() commands.JobDeletionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteJobCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateBatchCommandHandler() commands.CreateBatchCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBatchCommandHandler(f, c.CreateDispatchNotificationCommandHandler(), c.runner)
}

func (c *CompositionRoot) CreateUpdateBatchStatusCommandHandler() commands.UpdateBatchStatusCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBatchStatusCommandHandler(f, c.CreateDispatchNotificationCommandHandler(), c.runner)
}

func (c *CompositionRoot) CreateCreateDraftInvoiceCommandHandler() commands.CreateDraftInvoiceCommandHandler {
	var f commands.DraftInvoiceUoWFactory = FuncDraftInvoiceUoWFactory(func() commands.DraftInvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDraftInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateInvoiceCommandHandler() commands.UpdateInvoiceCommandHandler {
	return commands.NewUpdateInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateSendInvoiceCommandHandler() commands.SendInvoiceCommandHandler {
	return commands.NewSendInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateMarkInvoicePaidCommandHandler() commands.MarkInvoicePaidCommandHandler {
	return commands.NewMarkInvoicePaidCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateCancelInvoiceCommandHandler() commands.CancelInvoiceCommandHandler {
	return commands.NewCancelInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateEscalateOverdueInvoicesCommandHandler() commands.EscalateOverdueInvoicesCommandHandler {
	return commands.NewEscalateOverdueInvoicesCommandHandler(
		c.invoiceUoWFactory(),
		c.CreateDispatchNotificationCommandHandler(),
		c.runner,
		c.logger,
	)
}

func (c *CompositionRoot) CreateDispatchNotificationCommandHandler() commands.DispatchNotificationCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchNotificationCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	return commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateClearNotificationsCommandHandler() commands.ClearNotificationsCommandHandler {
	return commands.NewClearNotificationsCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateGetJobByTrackingNumberQueryHandler() queries.GetJobByTrackingNumberQueryHandler {
	return queries.NewGetJobByTrackingNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound REST adapter over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateJobCommandHandler(),
		c.CreateTransitionJobStatusCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateAssignDeliveryAgentCommandHandler(),
		c.CreateDeleteJobCommandHandler(),
		c.CreateCreateBatchCommandHandler(),
		c.CreateUpdateBatchStatusCommandHandler(),
		c.CreateUpdateInvoiceCommandHandler(),
		c.CreateSendInvoiceCommandHandler(),
		c.CreateMarkInvoicePaidCommandHandler(),
		c.CreateCancelInvoiceCommandHandler(),
		c.CreateMarkNotificationReadCommandHandler(),
		c.CreateMarkAllNotificationsReadCommandHandler(),
		c.CreateClearNotificationsCommandHandler(),
		c.CreateGetJobByTrackingNumberQueryHandler(),
		c.CreateGetNotificationsQueryHandler(),
	)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateEscalateOverdueInvoicesCommandHandler(), c.logger)
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncJobDeletionUoWFactory func() commands.JobDeletionUoW

func (f FuncJobDeletionUoWFactory) Create() commands.JobDeletionUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncDraftInvoiceUoWFactory func() commands.DraftInvoiceUoW

func (f FuncDraftInvoiceUoWFactory) Create() commands.DraftInvoiceUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
