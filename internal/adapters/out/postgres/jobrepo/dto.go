// Package jobrepo persists the job aggregate and its owned records: the
// append-only status timeline and the attached documents. It maps between
// domain entities and their relational representation.
package jobrepo

import (
	"time"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO is the database row for a job aggregate. The tracking number is
// uniquely indexed: uniqueness is checked before insert, and the constraint
// is the backstop against concurrent generation races.
type JobDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber  string     `gorm:"uniqueIndex"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	Pickup          AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery        AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	WeightKg        float64
	DeclaredValue   float64
	Quantity        int
	Priority        string
	Status          string     `gorm:"index"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAgentID *uuid.UUID `gorm:"type:uuid;index"`
	BatchID         *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides GORM's default naming to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// AddressDTO is the embedded pickup or delivery location within the job row.
type AddressDTO struct {
	Street   string
	City     string
	Postcode string
}

// TimelineEntryDTO is the database row for one status history record.
type TimelineEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID      uuid.UUID `gorm:"type:uuid;index"`
	Status     string
	Notes      string
	UpdatedBy  uuid.UUID `gorm:"type:uuid"`
	OccurredAt time.Time
}

// TableName overrides GORM's default naming to use "job_timeline_entries".
func (TimelineEntryDTO) TableName() string {
	return "job_timeline_entries"
}

// DocumentDTO is the database row for a file attached to a job. The file
// content lives in external storage; only the key is kept here.
type DocumentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID       uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	ContentType string
	StorageKey  string
	UploadedBy  uuid.UUID `gorm:"type:uuid"`
	UploadedAt  time.Time
}

// TableName overrides GORM's default naming to use "job_documents".
func (DocumentDTO) TableName() string {
	return "job_documents"
}

func fromDomain(aggregate *job.Job) JobDTO {
	return JobDTO{
		ID:              aggregate.ID().Bytes(),
		TrackingNumber:  aggregate.TrackingNumber(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		Pickup:          addressFromDomain(aggregate.PickupAddress()),
		Delivery:        addressFromDomain(aggregate.DeliveryAddress()),
		WeightKg:        aggregate.WeightKg(),
		DeclaredValue:   aggregate.DeclaredValue(),
		Quantity:        aggregate.Quantity(),
		Priority:        aggregate.Priority().String(),
		Status:          aggregate.Status().String(),
		DriverID:        optionalIDFromDomain(aggregate.Driver()),
		DeliveryAgentID: optionalIDFromDomain(aggregate.DeliveryAgent()),
		BatchID:         optionalIDFromDomain(aggregate.Batch()),
	}
}

func addressFromDomain(address job.Address) AddressDTO {
	return AddressDTO{
		Street:   address.Street(),
		City:     address.City(),
		Postcode: address.Postcode(),
	}
}

func optionalIDFromDomain(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := job.NewAddress(dto.Pickup.Street, dto.Pickup.City, dto.Pickup.Postcode)
	if err != nil {
		return nil, err
	}

	delivery, err := job.NewAddress(dto.Delivery.Street, dto.Delivery.City, dto.Delivery.Postcode)
	if err != nil {
		return nil, err
	}

	driverID, err := optionalIDToDomain(dto.DriverID)
	if err != nil {
		return nil, err
	}

	agentID, err := optionalIDToDomain(dto.DeliveryAgentID)
	if err != nil {
		return nil, err
	}

	batchID, err := optionalIDToDomain(dto.BatchID)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(
		id,
		dto.TrackingNumber,
		customerID,
		pickup,
		delivery,
		dto.WeightKg,
		dto.DeclaredValue,
		dto.Quantity,
		job.Priority(dto.Priority),
		job.Status(dto.Status),
		driverID,
		agentID,
		batchID,
	)
}

func optionalIDToDomain(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil //absence of the column is not an error
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func timelineEntryFromDomain(entry *job.TimelineEntry) TimelineEntryDTO {
	return TimelineEntryDTO{
		ID:         entry.ID().Bytes(),
		JobID:      entry.JobID().Bytes(),
		Status:     entry.Status().String(),
		Notes:      entry.Notes(),
		UpdatedBy:  entry.UpdatedBy().Bytes(),
		OccurredAt: entry.OccurredAt(),
	}
}

func timelineEntryToDomain(dto TimelineEntryDTO) (*job.TimelineEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	updatedBy, err := kernel.UUIDFromBytes(dto.UpdatedBy[:])
	if err != nil {
		return nil, err
	}

	return job.RestoreTimelineEntry(id, jobID, job.Status(dto.Status), dto.Notes, updatedBy, dto.OccurredAt)
}

func documentFromDomain(document *job.Document) DocumentDTO {
	return DocumentDTO{
		ID:          document.ID().Bytes(),
		JobID:       document.JobID().Bytes(),
		Name:        document.Name(),
		ContentType: document.ContentType(),
		StorageKey:  document.StorageKey(),
		UploadedBy:  document.UploadedBy().Bytes(),
		UploadedAt:  document.UploadedAt(),
	}
}

func documentToDomain(dto DocumentDTO) (*job.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	uploadedBy, err := kernel.UUIDFromBytes(dto.UploadedBy[:])
	if err != nil {
		return nil, err
	}

	return job.NewDocument(id, jobID, dto.Name, dto.ContentType, dto.StorageKey, uploadedBy, dto.UploadedAt)
}
