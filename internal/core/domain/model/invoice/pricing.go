package invoice

import "logistics/internal/core/domain/model/job"

// taxRate is the flat rate applied to every draft invoice. Deliberately not
// configurable.
const taxRate = 0.20

// dueInDays is how long after issue a draft invoice falls due.
const dueInDays = 30

// Pricing is the computed amounts for a shipping service line.
type Pricing struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

func basePriceFor(priority job.Priority) float64 {
	switch priority {
	case job.PriorityUrgent:
		return 100
	case job.PriorityExpress:
		return 75
	default:
		return 50
	}
}

func perKgRateFor(priority job.Priority) float64 {
	switch priority {
	case job.PriorityUrgent:
		return 4
	case job.PriorityExpress:
		return 3
	default:
		return 2
	}
}

// PriceFor computes the shipping service price for a job's priority and
// weight: a flat base per service level plus a per-kilogram rate, with the
// flat tax on top.
func PriceFor(priority job.Priority, weightKg float64) Pricing {
	if weightKg < 0 {
		weightKg = 0
	}

	subtotal := basePriceFor(priority) + weightKg*perKgRateFor(priority)
	tax := subtotal * taxRate
	return Pricing{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
