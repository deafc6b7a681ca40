package batch

import (
	"fmt"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment batch.
//
//	in_preparation → shipped → in_transit → arrived → distributed
//
// Every status except in_preparation cascades a corresponding job status to
// the batch's member jobs when set.
type Status string

const (
	StatusInPreparation Status = "in_preparation"
	StatusShipped       Status = "shipped"
	StatusInTransit     Status = "in_transit"
	StatusArrived       Status = "arrived"
	StatusDistributed   Status = "distributed"
)

func statusLabels() map[Status]string {
	return map[Status]string{
		StatusInPreparation: "In Preparation",
		StatusShipped:       "Shipped",
		StatusInTransit:     "In Transit",
		StatusArrived:       "Arrived",
		StatusDistributed:   "Distributed",
	}
}

// StatusFromString parses a batch status received from the outside.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks the status against the known set.
func (s Status) Validate() error {
	if _, ok := statusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid batch status", string(s)))
	}
	return nil
}

// String returns the machine form, e.g. "in_transit".
func (s Status) String() string {
	return string(s)
}

// Label returns the display form, e.g. "In Transit".
func (s Status) Label() string {
	if label, ok := statusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// JobCascadeStatus returns the job status that this batch status pushes onto
// member jobs, and whether a cascade applies at all. in_preparation cascades
// nothing.
func (s Status) JobCascadeStatus() (job.Status, bool) {
	switch s {
	case StatusShipped:
		return job.StatusShipped, true
	case StatusInTransit:
		return job.StatusInTransit, true
	case StatusArrived:
		return job.StatusArrivedAtDestination, true
	case StatusDistributed:
		return job.StatusOutForDelivery, true
	default:
		return "", false
	}
}
