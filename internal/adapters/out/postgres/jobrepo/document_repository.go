package jobrepo

import (
	"context"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM.
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GORM document repository.
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// Add persists a new document record.
func (r *GormDocumentRepository) Add(ctx context.Context, document *job.Document) error {
	if err := document.Validate(); err != nil {
		return err
	}

	dto := documentFromDomain(document)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForJob retrieves the documents attached to a job, newest first.
func (r *GormDocumentRepository) GetAllForJob(
	ctx context.Context,
	jobID kernel.UUID,
) ([]*job.Document, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DocumentDTO
	err := r.db.WithContext(ctx).
		Order("uploaded_at DESC").
		Find(&dtos, "job_id = ?", jobID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	documents := make([]*job.Document, 0, len(dtos))
	for _, dto := range dtos {
		document, docErr := documentToDomain(dto)
		if docErr != nil {
			return nil, docErr
		}
		documents = append(documents, document)
	}

	return documents, nil
}

// DeleteAllForJob removes every document record of a job.
func (r *GormDocumentRepository) DeleteAllForJob(ctx context.Context, jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&DocumentDTO{}, "job_id = ?", jobID.Bytes()).Error
}
