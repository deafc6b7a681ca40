package queries

import (
	"context"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJobByTrackingNumberQueryHandler serves the tracking page: one job row
// plus its ordered timeline, read directly from the database without going
// through the aggregate.
type GetJobByTrackingNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetJobByTrackingNumberQueryHandler creates a handler for tracking lookups.
func NewGetJobByTrackingNumberQueryHandler(db *gorm.DB) GetJobByTrackingNumberQueryHandler {
	return GetJobByTrackingNumberQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no job
// carries the tracking number.
func (h GetJobByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetJobByTrackingNumberQuery,
) (JobResponse, error) {
	if err := query.Validate(); err != nil {
		return JobResponse{}, err
	}

	resp, err := h.readJob(ctx, query.TrackingNumber())
	if err != nil {
		return JobResponse{}, err
	}

	resp.Timeline, err = h.readTimeline(ctx, resp.ID)
	if err != nil {
		return JobResponse{}, err
	}

	return resp, nil
}

func (h GetJobByTrackingNumberQueryHandler) readJob(
	ctx context.Context,
	trackingNumber string,
) (JobResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			customer_id,
			pickup_street,
			pickup_city,
			pickup_postcode,
			delivery_street,
			delivery_city,
			delivery_postcode,
			weight_kg,
			declared_value,
			quantity,
			priority,
			status,
			driver_id,
			delivery_agent_id,
			batch_id
		FROM jobs
		WHERE tracking_number = ?
	`, trackingNumber).Rows()
	if err != nil {
		return JobResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return JobResponse{}, err
		}
		return JobResponse{}, errs.NewObjectNotFoundError("job", trackingNumber)
	}

	var resp JobResponse
	var id uuid.UUID
	var customerID uuid.UUID
	var status, priority string
	var driverID, agentID, batchID uuid.NullUUID

	err = rows.Scan(
		&id,
		&resp.TrackingNumber,
		&customerID,
		&resp.PickupAddress.Street,
		&resp.PickupAddress.City,
		&resp.PickupAddress.Postcode,
		&resp.DeliveryAddress.Street,
		&resp.DeliveryAddress.City,
		&resp.DeliveryAddress.Postcode,
		&resp.WeightKg,
		&resp.DeclaredValue,
		&resp.Quantity,
		&priority,
		&status,
		&driverID,
		&agentID,
		&batchID,
	)
	if err != nil {
		return JobResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return JobResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return JobResponse{}, err
	}
	if resp.DriverID, err = optionalUUID(driverID); err != nil {
		return JobResponse{}, err
	}
	if resp.DeliveryAgentID, err = optionalUUID(agentID); err != nil {
		return JobResponse{}, err
	}
	if resp.BatchID, err = optionalUUID(batchID); err != nil {
		return JobResponse{}, err
	}

	resp.Priority = priority
	resp.Status = status
	resp.StatusLabel = job.Status(status).Label()
	return resp, nil
}

func (h GetJobByTrackingNumberQueryHandler) readTimeline(
	ctx context.Context,
	jobID kernel.UUID,
) ([]TimelineEntryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			notes,
			updated_by,
			occurred_at
		FROM job_timeline_entries
		WHERE job_id = ?
		ORDER BY occurred_at, id
	`, jobID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timeline := make([]TimelineEntryResponse, 0)
	for rows.Next() {
		var entry TimelineEntryResponse
		var id, updatedBy uuid.UUID

		err = rows.Scan(&id, &entry.Status, &entry.Notes, &updatedBy, &entry.OccurredAt)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.UpdatedBy, err = kernel.UUIDFromBytes(updatedBy[:]); err != nil {
			return nil, err
		}
		timeline = append(timeline, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return timeline, nil
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil //absence of the column is not an error
	}

	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
