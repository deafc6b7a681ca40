package job

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the canonical job lifecycle state. It merges the human-facing
// and machine-facing vocabularies of earlier iterations into one enum; the
// display form comes from Label().
//
// The main pipeline runs:
//
//	pending → assigned → collected → at_warehouse → batched → shipped
//	        → in_transit → arrived_at_destination → out_for_delivery → delivered
//
// with collection_failed / delivery_failed side branches, a draft pre-state
// and a cancelled terminal state. Transitions are deliberately permissive:
// any known status may be set at any time, including a repeat of the current
// one (each application still appends its own timeline entry). The enforced
// state guards are deletion locking and batch eligibility.
type Status string

const (
	StatusDraft                Status = "draft"
	StatusPending              Status = "pending"
	StatusAssigned             Status = "assigned"
	StatusCollected            Status = "collected"
	StatusCollectionFailed     Status = "collection_failed"
	StatusAtWarehouse          Status = "at_warehouse"
	StatusBatched              Status = "batched"
	StatusShipped              Status = "shipped"
	StatusInTransit            Status = "in_transit"
	StatusArrivedAtDestination Status = "arrived_at_destination"
	StatusOutForDelivery       Status = "out_for_delivery"
	StatusDelivered            Status = "delivered"
	StatusDeliveryFailed       Status = "delivery_failed"
	StatusCancelled            Status = "cancelled"
)

func statusLabels() map[Status]string {
	return map[Status]string{
		StatusDraft:                "Draft",
		StatusPending:              "Pending",
		StatusAssigned:             "Assigned",
		StatusCollected:            "Collected",
		StatusCollectionFailed:     "Collection Failed",
		StatusAtWarehouse:          "At Warehouse",
		StatusBatched:              "Batched",
		StatusShipped:              "Shipped",
		StatusInTransit:            "In Transit",
		StatusArrivedAtDestination: "Arrived at Destination",
		StatusOutForDelivery:       "Out for Delivery",
		StatusDelivered:            "Delivered",
		StatusDeliveryFailed:       "Delivery Failed",
		StatusCancelled:            "Cancelled",
	}
}

// StatusFromString parses a status received from the outside.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks the status against the canonical set.
func (s Status) Validate() error {
	if _, ok := statusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid job status", string(s)))
	}
	return nil
}

// String returns the machine form, e.g. "at_warehouse".
func (s Status) String() string {
	return string(s)
}

// Label returns the display form, e.g. "At Warehouse".
func (s Status) Label() string {
	if label, ok := statusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsDeletionLocked reports whether a job in this status may no longer be
// deleted: once a parcel is physically in the network the record must stay.
func (s Status) IsDeletionLocked() bool {
	switch s {
	case StatusCollected, StatusAtWarehouse, StatusBatched,
		StatusShipped, StatusInTransit, StatusDelivered:
		return true
	default:
		return false
	}
}

// AllowsBatchLink reports whether a job in this status may carry a batch
// reference. Leaving this family clears the link.
func (s Status) AllowsBatchLink() bool {
	switch s {
	case StatusBatched, StatusShipped, StatusInTransit,
		StatusArrivedAtDestination, StatusOutForDelivery:
		return true
	default:
		return false
	}
}

// TriggersEscalation reports whether reaching this status widens the
// notification audience to the back-office roles.
func (s Status) TriggersEscalation() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusAtWarehouse
}
