package job

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// ErrTimelineEntryIsNotConstructed is returned when a TimelineEntry was not
// created through NewTimelineEntry or RestoreTimelineEntry.
var ErrTimelineEntryIsNotConstructed = errors.New(
	"TimelineEntry must be created via NewTimelineEntry constructor")

// TimelineEntry is one append-only audit record of a job's status history.
// Entries are owned exclusively by their job: never mutated after creation
// and removed only when the job itself is deleted.
type TimelineEntry struct {
	id         kernel.UUID
	jobID      kernel.UUID
	status     Status
	notes      string
	updatedBy  kernel.UUID
	occurredAt time.Time

	isConstructed bool
}

// NewTimelineEntry records that a job entered the given status.
func NewTimelineEntry(
	id kernel.UUID,
	jobID kernel.UUID,
	status Status,
	notes string,
	updatedBy kernel.UUID,
	occurredAt time.Time,
) (*TimelineEntry, error) {
	if err := errors.Join(
		id.Validate(),
		jobID.Validate(),
		status.Validate(),
		updatedBy.Validate(),
	); err != nil {
		return nil, err
	}

	return &TimelineEntry{
		id:            id,
		jobID:         jobID,
		status:        status,
		notes:         notes,
		updatedBy:     updatedBy,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// RestoreTimelineEntry reconstructs an entry from persistence.
func RestoreTimelineEntry(
	id kernel.UUID,
	jobID kernel.UUID,
	status Status,
	notes string,
	updatedBy kernel.UUID,
	occurredAt time.Time,
) (*TimelineEntry, error) {
	return NewTimelineEntry(id, jobID, status, notes, updatedBy, occurredAt)
}

// Validate ensures the entry came from a constructor.
func (e *TimelineEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrTimelineEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *TimelineEntry) ID() kernel.UUID {
	return e.id
}

// JobID returns the owning job's id.
func (e *TimelineEntry) JobID() kernel.UUID {
	return e.jobID
}

// Status returns the status the job entered.
func (e *TimelineEntry) Status() Status {
	return e.status
}

// Notes returns the free-text note attached to the change, possibly empty.
func (e *TimelineEntry) Notes() string {
	return e.notes
}

// UpdatedBy returns the id of the user who made the change.
func (e *TimelineEntry) UpdatedBy() kernel.UUID {
	return e.updatedBy
}

// OccurredAt returns when the change happened.
func (e *TimelineEntry) OccurredAt() time.Time {
	return e.occurredAt
}
