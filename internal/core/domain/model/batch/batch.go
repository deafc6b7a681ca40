package batch

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrBatchIsNotConstructed is returned when a Batch instance was not
	// created through NewBatch or RestoreBatch.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch or RestoreBatch constructor")
)

// Batch groups warehouse-ready jobs shipped together under one carrier and
// route. The totals (job count, weight, value) are denormalized from the job
// set resolved at creation time and never recomputed afterwards; after
// creation only status, notes and shippedAt are ever mutated.
type Batch struct {
	id          kernel.UUID
	batchNumber string
	name        string
	route       string
	carrier     string
	trackingRef string
	totalJobs   int
	totalWeight float64
	totalValue  float64
	status      Status
	shippedAt   *time.Time
	notes       string

	isConstructed bool
}

// NewBatch creates a batch in in_preparation status over the given resolved
// job set, computing the denormalized totals from it. The caller has already
// verified every job's eligibility; an empty set is rejected here as a last
// line of defense.
func NewBatch(
	id kernel.UUID,
	batchNumber string,
	name string,
	route string,
	carrier string,
	trackingRef string,
	jobs []*job.Job,
) (*Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if batchNumber == "" {
		return nil, errs.NewValueIsRequiredError("batchNumber")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if route == "" {
		return nil, errs.NewValueIsRequiredError("route")
	}
	if len(jobs) == 0 {
		return nil, errs.NewValueIsRequiredError("jobs")
	}

	b := &Batch{
		id:            id,
		batchNumber:   batchNumber,
		name:          name,
		route:         route,
		carrier:       carrier,
		trackingRef:   trackingRef,
		status:        StatusInPreparation,
		isConstructed: true,
	}

	b.totalJobs = len(jobs)
	for _, j := range jobs {
		b.totalWeight += j.WeightKg()
		b.totalValue += j.DeclaredValue()
	}

	return b, nil
}

// RestoreBatch reconstructs a batch from persistence.
func RestoreBatch(
	id kernel.UUID,
	batchNumber string,
	name string,
	route string,
	carrier string,
	trackingRef string,
	totalJobs int,
	totalWeight float64,
	totalValue float64,
	status Status,
	shippedAt *time.Time,
	notes string,
) (*Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if batchNumber == "" {
		return nil, errs.NewValueIsRequiredError("batchNumber")
	}

	return &Batch{
		id:            id,
		batchNumber:   batchNumber,
		name:          name,
		route:         route,
		carrier:       carrier,
		trackingRef:   trackingRef,
		totalJobs:     totalJobs,
		totalWeight:   totalWeight,
		totalValue:    totalValue,
		status:        status,
		shippedAt:     shippedAt,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the batch came from a constructor.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// BatchNumber returns the human-readable batch code.
func (b *Batch) BatchNumber() string {
	return b.batchNumber
}

// Name returns the operator-given batch name.
func (b *Batch) Name() string {
	return b.name
}

// Route returns the destination route description.
func (b *Batch) Route() string {
	return b.route
}

// Carrier returns the carrier handling the batch, possibly empty.
func (b *Batch) Carrier() string {
	return b.carrier
}

// TrackingRef returns the carrier's own tracking reference, possibly empty.
func (b *Batch) TrackingRef() string {
	return b.trackingRef
}

// TotalJobs returns the member count resolved at creation.
func (b *Batch) TotalJobs() int {
	return b.totalJobs
}

// TotalWeight returns the summed member weight resolved at creation.
func (b *Batch) TotalWeight() float64 {
	return b.totalWeight
}

// TotalValue returns the summed declared value resolved at creation.
func (b *Batch) TotalValue() float64 {
	return b.totalValue
}

// Status returns the current batch status.
func (b *Batch) Status() Status {
	return b.status
}

// ShippedAt returns when the batch last entered shipped status, or nil.
func (b *Batch) ShippedAt() *time.Time {
	return b.shippedAt
}

// Notes returns the latest operator notes, possibly empty.
func (b *Batch) Notes() string {
	return b.notes
}

// ChangeStatus moves the batch to any known status. Every entry into
// shipped re-stamps shippedAt, even when the batch was shipped before.
func (b *Batch) ChangeStatus(newStatus Status, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	b.status = newStatus
	if newStatus == StatusShipped {
		shippedAt := at
		b.shippedAt = &shippedAt
	}
	return nil
}

// UpdateNotes replaces the operator notes.
func (b *Batch) UpdateNotes(notes string) {
	b.notes = notes
}
