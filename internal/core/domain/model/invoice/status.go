package invoice

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the billing lifecycle state of an invoice.
//
//	draft → pending → paid
//	   └───────┴────→ cancelled
//
// Paid and cancelled are terminal. Drafts are editable; everything later is
// frozen except the guarded transitions.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func statusLabels() map[Status]string {
	return map[Status]string{
		StatusDraft:     "Draft",
		StatusPending:   "Pending",
		StatusPaid:      "Paid",
		StatusCancelled: "Cancelled",
	}
}

// StatusFromString parses an invoice status received from the outside.
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
			fmt.Errorf("%q is not a valid invoice status", string(s)))
	}
	return nil
}

// String returns the machine form, e.g. "pending".
func (s Status) String() string {
	return string(s)
}

// Label returns the display form, e.g. "Pending".
func (s Status) Label() string {
	if label, ok := statusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}
