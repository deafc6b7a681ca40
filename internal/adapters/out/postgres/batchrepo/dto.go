// Package batchrepo persists shipment batch aggregates.
package batchrepo

import (
	"time"

	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO is the database row for a batch aggregate. The totals are the
// denormalized values computed at creation and are never recomputed here.
type BatchDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchNumber string    `gorm:"uniqueIndex"`
	Name        string
	Route       string
	Carrier     string
	TrackingRef string
	TotalJobs   int
	TotalWeight float64
	TotalValue  float64
	Status      string `gorm:"index"`
	ShippedAt   *time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming to use "batches".
func (BatchDTO) TableName() string {
	return "batches"
}

func fromDomain(aggregate *batch.Batch) BatchDTO {
	return BatchDTO{
		ID:          aggregate.ID().Bytes(),
		BatchNumber: aggregate.BatchNumber(),
		Name:        aggregate.Name(),
		Route:       aggregate.Route(),
		Carrier:     aggregate.Carrier(),
		TrackingRef: aggregate.TrackingRef(),
		TotalJobs:   aggregate.TotalJobs(),
		TotalWeight: aggregate.TotalWeight(),
		TotalValue:  aggregate.TotalValue(),
		Status:      aggregate.Status().String(),
		ShippedAt:   aggregate.ShippedAt(),
		Notes:       aggregate.Notes(),
	}
}

func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return batch.RestoreBatch(
		id,
		dto.BatchNumber,
		dto.Name,
		dto.Route,
		dto.Carrier,
		dto.TrackingRef,
		dto.TotalJobs,
		dto.TotalWeight,
		dto.TotalValue,
		batch.Status(dto.Status),
		dto.ShippedAt,
		dto.Notes,
	)
}
