package job

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created
	// through NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")
)

// Job is the aggregate root for a single parcel, tracked from collection to
// delivery. It owns the status state machine, the driver and delivery-agent
// assignments and the batch linkage.
//
// Invariants:
//   - trackingNumber is immutable once set
//   - quantity is positive; weight and declared value are non-negative
//   - batchID is only carried while the status is in the batch family
//     (batched, shipped, in_transit, arrived_at_destination, out_for_delivery)
//   - the timeline is append-only and owned exclusively by the job; entries
//     are written by the use cases together with each status change
type Job struct {
	id              kernel.UUID
	trackingNumber  string
	customerID      kernel.UUID
	pickupAddress   Address
	deliveryAddress Address
	weightKg        float64
	declaredValue   float64
	quantity        int
	priority        Priority
	status          Status
	driverID        *kernel.UUID
	deliveryAgentID *kernel.UUID
	batchID         *kernel.UUID

	isConstructed bool
}

// NewJob creates a job in pending status. The tracking number must already
// be checked for uniqueness by the caller (generate, look up, retry on
// collision).
func NewJob(
	id kernel.UUID,
	trackingNumber string,
	customerID kernel.UUID,
	pickupAddress Address,
	deliveryAddress Address,
	weightKg float64,
	declaredValue float64,
	quantity int,
	priority Priority,
) (*Job, error) {
	j := &Job{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setTrackingNumber(trackingNumber),
		j.setCustomerID(customerID),
		j.setPickupAddress(pickupAddress),
		j.setDeliveryAddress(deliveryAddress),
		j.setWeightKg(weightKg),
		j.setDeclaredValue(declaredValue),
		j.setQuantity(quantity),
		j.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a job from persistence, including its current
// status and assignments.
func RestoreJob(
	id kernel.UUID,
	trackingNumber string,
	customerID kernel.UUID,
	pickupAddress Address,
	deliveryAddress Address,
	weightKg float64,
	declaredValue float64,
	quantity int,
	priority Priority,
	status Status,
	driverID *kernel.UUID,
	deliveryAgentID *kernel.UUID,
	batchID *kernel.UUID,
) (*Job, error) {
	j, err := NewJob(id, trackingNumber, customerID, pickupAddress, deliveryAddress,
		weightKg, declaredValue, quantity, priority)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	j.status = status
	j.driverID = driverID
	j.deliveryAgentID = deliveryAgentID
	j.batchID = batchID
	return j, nil
}

// Validate ensures the job came from a constructor.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by identifier.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// TrackingNumber returns the immutable human-readable tracking code.
func (j *Job) TrackingNumber() string {
	return j.trackingNumber
}

// CustomerID returns the owning customer's id.
func (j *Job) CustomerID() kernel.UUID {
	return j.customerID
}

// PickupAddress returns the collection location.
func (j *Job) PickupAddress() Address {
	return j.pickupAddress
}

// DeliveryAddress returns the destination location.
func (j *Job) DeliveryAddress() Address {
	return j.deliveryAddress
}

// WeightKg returns the parcel weight in kilograms.
func (j *Job) WeightKg() float64 {
	return j.weightKg
}

// DeclaredValue returns the customer-declared parcel value.
func (j *Job) DeclaredValue() float64 {
	return j.declaredValue
}

// Quantity returns the number of packages in the job.
func (j *Job) Quantity() int {
	return j.quantity
}

// Priority returns the paid service level.
func (j *Job) Priority() Priority {
	return j.priority
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// Driver returns the assigned driver's id, or nil.
func (j *Job) Driver() *kernel.UUID {
	return j.driverID
}

// DeliveryAgent returns the assigned delivery agent's id, or nil.
func (j *Job) DeliveryAgent() *kernel.UUID {
	return j.deliveryAgentID
}

// Batch returns the id of the batch this job is shipped in, or nil.
func (j *Job) Batch() *kernel.UUID {
	return j.batchID
}

// AuthorizeStatusChange applies the role and ownership rules for status
// transitions:
//   - admin and superadmin are always allowed
//   - warehouse staff are always allowed
//   - a driver only on a job assigned to them
//   - a delivery agent only on a job assigned to them
//   - every other role is denied
func (j *Job) AuthorizeStatusChange(actor kernel.Actor) error {
	switch {
	case actor.Role().IsElevated():
		return nil
	case actor.Role() == kernel.RoleWarehouse:
		return nil
	case actor.Role() == kernel.RoleDriver:
		if j.driverID != nil && j.driverID.IsEqual(actor.ID()) {
			return nil
		}
	case actor.Role() == kernel.RoleDeliveryAgent:
		if j.deliveryAgentID != nil && j.deliveryAgentID.IsEqual(actor.ID()) {
			return nil
		}
	}

	return errs.NewPermissionDeniedError(actor.ID().String(), "update the status of this job")
}

// ChangeStatus sets the job to any known status. Repeating the current
// status is allowed; callers append a timeline entry per application, so a
// repeat yields a second entry. Leaving the batch family drops the batch
// link to keep the batchID invariant.
func (j *Job) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	j.status = newStatus
	if !newStatus.AllowsBatchLink() {
		j.batchID = nil
	}
	return nil
}

// AssignDriver records the driver and forces the status to assigned.
func (j *Job) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	j.driverID = &driverID
	return j.ChangeStatus(StatusAssigned)
}

// AssignDeliveryAgent records the delivery agent and forces the status to
// out_for_delivery.
func (j *Job) AssignDeliveryAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	j.deliveryAgentID = &agentID
	return j.ChangeStatus(StatusOutForDelivery)
}

// AttachToBatch links the job to a batch. Only jobs currently at the
// warehouse are eligible; the status moves to batched.
func (j *Job) AttachToBatch(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	if j.status != StatusAtWarehouse {
		return errs.NewInvalidStateErrorWithCause("job", j.status.String(),
			fmt.Errorf("only jobs at the warehouse can be batched"))
	}

	j.status = StatusBatched
	j.batchID = &batchID
	return nil
}

// EnsureDeletable refuses deletion once the parcel is in the network.
func (j *Job) EnsureDeletable() error {
	if j.status.IsDeletionLocked() {
		return errs.NewInvalidStateErrorWithCause("job", j.status.String(),
			fmt.Errorf("jobs in status %s cannot be deleted", j.status))
	}
	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	j.trackingNumber = trackingNumber
	return nil
}

func (j *Job) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	j.customerID = customerID
	return nil
}

func (j *Job) setPickupAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	j.pickupAddress = address
	return nil
}

func (j *Job) setDeliveryAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	j.deliveryAddress = address
	return nil
}

func (j *Job) setWeightKg(weightKg float64) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v is negative", weightKg))
	}
	j.weightKg = weightKg
	return nil
}

func (j *Job) setDeclaredValue(declaredValue float64) error {
	if declaredValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("declaredValue", fmt.Errorf("%v is negative", declaredValue))
	}
	j.declaredValue = declaredValue
	return nil
}

func (j *Job) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	j.quantity = quantity
	return nil
}

func (j *Job) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	j.priority = priority
	return nil
}
