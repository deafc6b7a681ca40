// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit follow-ups submitted to the task runner.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition it needs, so tests mock
// exactly the repositories a use case touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// TimelineRepoFactory provides access to the timeline repository within a transaction.
	TimelineRepoFactory interface {
		TimelineRepository() ports.TimelineRepository
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// BatchRepoFactory provides access to the batch repository within a transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// JobUoW manages transactions for job mutations: the job row and its
	// timeline always change together.
	JobUoW interface {
		TxManager
		JobRepoFactory
		TimelineRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// JobDeletionUoW manages the delete cascade: job, timeline and documents.
	JobDeletionUoW interface {
		TxManager
		JobRepoFactory
		TimelineRepoFactory
		DocumentRepoFactory
	}

	// JobDeletionUoWFactory creates new job deletion unit of work instances.
	JobDeletionUoWFactory interface {
		Create() JobDeletionUoW
	}

	// AssignmentUoW manages crew assignments: the job, its timeline and the
	// identity lookup of the assignee.
	AssignmentUoW interface {
		TxManager
		JobRepoFactory
		TimelineRepoFactory
		UserRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// BatchUoW manages transactions spanning a batch and its member jobs.
	BatchUoW interface {
		TxManager
		BatchRepoFactory
		JobRepoFactory
		TimelineRepoFactory
	}

	// BatchUoWFactory creates new batch unit of work instances.
	BatchUoWFactory interface {
		Create() BatchUoW
	}

	// InvoiceUoW manages transactions for invoice-only operations.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// DraftInvoiceUoW manages automatic draft generation: the invoice plus the
	// delivered job it bills.
	DraftInvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
		JobRepoFactory
	}

	// DraftInvoiceUoWFactory creates new draft invoice unit of work instances.
	DraftInvoiceUoWFactory interface {
		Create() DraftInvoiceUoW
	}

	// NotificationUoW manages transactions over a user's notification feed.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// DispatchUoW manages notification fan-out: audience lookup plus the bulk
	// insert of the resulting rows.
	DispatchUoW interface {
		TxManager
		NotificationRepoFactory
		UserRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)

// Follow-up contracts decouple the mutating handlers from the handlers they
// trigger after commit. Both are satisfied by handlers in this package and
// mocked in tests.
type (
	// NotificationDispatcher fans a domain event out to its audience.
	NotificationDispatcher interface {
		Handle(ctx context.Context, cmd DispatchNotificationCommand) error
	}

	// DraftInvoiceCreator generates the automatic draft invoice for a
	// delivered job.
	DraftInvoiceCreator interface {
		Handle(ctx context.Context, cmd CreateDraftInvoiceCommand) error
	}
)
