package jobrepo

import (
	"context"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormTimelineRepository implements TimelineRepository using GORM. The
// timeline is append-only; there is no update path.
type GormTimelineRepository struct {
	db *gorm.DB
}

// NewGormTimelineRepository creates a new GORM timeline repository.
func NewGormTimelineRepository(db *gorm.DB) *GormTimelineRepository {
	return &GormTimelineRepository{db: db}
}

// Add appends one timeline entry.
func (r *GormTimelineRepository) Add(ctx context.Context, entry *job.TimelineEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := timelineEntryFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForJob retrieves a job's timeline ordered from oldest to newest.
func (r *GormTimelineRepository) GetAllForJob(
	ctx context.Context,
	jobID kernel.UUID,
) ([]*job.TimelineEntry, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TimelineEntryDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at, id").
		Find(&dtos, "job_id = ?", jobID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*job.TimelineEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := timelineEntryToDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// DeleteAllForJob removes every timeline entry of a job. Deleting nothing
// is fine: a job straight out of draft may have no history yet.
func (r *GormTimelineRepository) DeleteAllForJob(ctx context.Context, jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&TimelineEntryDTO{}, "job_id = ?", jobID.Bytes()).Error
}
