// Package invoice contains the Invoice aggregate and its owned line items,
// the priority-based shipping price table, and the guarded billing state
// machine (draft → pending → paid / cancelled).
package invoice
