package job

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Priority is the service level a customer paid for. It drives invoice
// pricing and is immutable after creation.
type Priority string

const (
	PriorityStandard Priority = "standard"
	PriorityExpress  Priority = "express"
	PriorityUrgent   Priority = "urgent"
)

func priorityLabels() map[Priority]string {
	return map[Priority]string{
		PriorityStandard: "Standard",
		PriorityExpress:  "Express",
		PriorityUrgent:   "Urgent",
	}
}

// PriorityFromString parses a priority received from the outside.
func PriorityFromString(s string) (Priority, error) {
	priority := Priority(s)
	if err := priority.Validate(); err != nil {
		return "", err
	}
	return priority, nil
}

// Validate checks the priority against the known set.
func (p Priority) Validate() error {
	if _, ok := priorityLabels()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%q is not a valid priority", string(p)))
	}
	return nil
}

// String returns the machine form, e.g. "express".
func (p Priority) String() string {
	return string(p)
}

// Label returns the display form, e.g. "Express".
func (p Priority) Label() string {
	if label, ok := priorityLabels()[p]; ok {
		return label
	}
	return "Unknown"
}
