// Package ports defines repository interfaces for the shipment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for shipment job aggregates.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetByTrackingNumber retrieves a job by its public tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*job.Job, error)

	// GetAllByIDs retrieves the jobs for the given identifiers.
	// Missing ids are not an error: the result simply omits them.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*job.Job, error)

	// GetAllInBatch retrieves every job currently linked to a batch.
	GetAllInBatch(ctx context.Context, batchID kernel.UUID) ([]*job.Job, error)

	// TrackingNumberExists reports whether a tracking number is already taken.
	TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error)

	// Delete removes a job aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}

// TimelineRepository defines the persistence contract for the append-only
// status history of jobs.
type TimelineRepository interface {
	// Add appends one timeline entry.
	Add(ctx context.Context, entry *job.TimelineEntry) error

	// GetAllForJob retrieves a job's timeline ordered from oldest to newest.
	GetAllForJob(ctx context.Context, jobID kernel.UUID) ([]*job.TimelineEntry, error)

	// DeleteAllForJob removes every timeline entry of a job.
	// Used when the job itself is deleted.
	DeleteAllForJob(ctx context.Context, jobID kernel.UUID) error
}

// DocumentRepository defines the persistence contract for documents attached
// to jobs.
type DocumentRepository interface {
	// Add persists a new document record.
	Add(ctx context.Context, document *job.Document) error

	// GetAllForJob retrieves the documents attached to a job.
	GetAllForJob(ctx context.Context, jobID kernel.UUID) ([]*job.Document, error)

	// DeleteAllForJob removes every document record of a job.
	DeleteAllForJob(ctx context.Context, jobID kernel.UUID) error
}
