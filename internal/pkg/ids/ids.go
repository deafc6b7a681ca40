// Package ids generates the human-readable codes used to reference jobs,
// batches and invoices: a kind-specific prefix, the date, and a short random
// suffix.
//
// Generation is pure and side-effect free. Uniqueness is the caller's
// responsibility: tracking numbers are checked against the store and
// regenerated on collision before insert, while batch and invoice numbers
// are generated once and rely on the unique index to surface a conflict.
package ids

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	trackingSuffixLen = 5
	batchSuffixLen    = 3
	invoiceDigits     = 4
)

// NewTrackingNumber returns a job tracking code, e.g. SHIP-20250830-K4F7Q.
func NewTrackingNumber(date time.Time) string {
	return fmt.Sprintf("SHIP-%s-%s", date.Format("20060102"), randomAlphanumeric(trackingSuffixLen))
}

// NewBatchNumber returns a batch code, e.g. BATCH-20250830-X2B.
func NewBatchNumber(date time.Time) string {
	return fmt.Sprintf("BATCH-%s-%s", date.Format("20060102"), randomAlphanumeric(batchSuffixLen))
}

// NewInvoiceNumber returns an invoice code, e.g. INV-20250830-4821.
func NewInvoiceNumber(date time.Time) string {
	return fmt.Sprintf("INV-%s-%04d", date.Format("20060102"), rand.IntN(10000))
}

func randomAlphanumeric(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[rand.IntN(len(alphanumeric))]
	}
	return string(b)
}
