package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrGetJobByTrackingNumberQueryIsNotConstructed = errors.New(
	"GetJobByTrackingNumberQuery must be created via NewGetJobByTrackingNumberQuery constructor",
)

// GetJobByTrackingNumberQuery is the public tracking lookup: given a
// tracking number it returns the job together with its full status history,
// oldest entry first.
type GetJobByTrackingNumberQuery struct {
	trackingNumber string

	guard kernel.ConstructorGuard
}

// NewGetJobByTrackingNumberQuery creates a query for the given tracking number.
func NewGetJobByTrackingNumberQuery(trackingNumber string) (GetJobByTrackingNumberQuery, error) {
	if trackingNumber == "" {
		return GetJobByTrackingNumberQuery{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return GetJobByTrackingNumberQuery{
		trackingNumber: trackingNumber,
		guard:          kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetJobByTrackingNumberQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number to look up.
func (q GetJobByTrackingNumberQuery) TrackingNumber() string {
	return q.trackingNumber
}

// JobResponse is the read model returned by the tracking lookup.
type JobResponse struct {
	ID              kernel.UUID
	TrackingNumber  string
	CustomerID      kernel.UUID
	PickupAddress   AddressResponse
	DeliveryAddress AddressResponse
	WeightKg        float64
	DeclaredValue   float64
	Quantity        int
	Priority        string
	Status          string
	StatusLabel     string
	DriverID        *kernel.UUID
	DeliveryAgentID *kernel.UUID
	BatchID         *kernel.UUID
	Timeline        []TimelineEntryResponse
}

// AddressResponse is the flattened address read model.
type AddressResponse struct {
	Street   string
	City     string
	Postcode string
}

// TimelineEntryResponse is one status history record of the tracked job.
type TimelineEntryResponse struct {
	ID         kernel.UUID
	Status     string
	Notes      string
	UpdatedBy  kernel.UUID
	OccurredAt time.Time
}
