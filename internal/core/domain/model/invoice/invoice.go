package invoice

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was
	// not created through a constructor.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewDraftForJob or RestoreInvoice constructor")

	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through a constructor.
	ErrItemIsNotConstructed = errors.New("Item must be created via RestoreItem constructor")
)

// Item is one billed line of an invoice. Each line references the job it
// bills; at most one line exists per job across all invoices, which is the
// idempotency key for automatic draft generation.
type Item struct {
	id          kernel.UUID
	invoiceID   kernel.UUID
	jobID       kernel.UUID
	description string
	quantity    int
	unitPrice   float64
	total       float64

	isConstructed bool
}

// RestoreItem reconstructs an invoice line from persistence.
func RestoreItem(
	id kernel.UUID,
	invoiceID kernel.UUID,
	jobID kernel.UUID,
	description string,
	quantity int,
	unitPrice float64,
	total float64,
) (*Item, error) {
	if err := errors.Join(id.Validate(), invoiceID.Validate(), jobID.Validate()); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		invoiceID:     invoiceID,
		jobID:         jobID,
		description:   description,
		quantity:      quantity,
		unitPrice:     unitPrice,
		total:         total,
		isConstructed: true,
	}, nil
}

// Validate ensures the item came from a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// InvoiceID returns the owning invoice's id.
func (i *Item) InvoiceID() kernel.UUID { return i.invoiceID }

// JobID returns the billed job's id.
func (i *Item) JobID() kernel.UUID { return i.jobID }

// Description returns the human-readable line description.
func (i *Item) Description() string { return i.description }

// Quantity returns the billed quantity.
func (i *Item) Quantity() int { return i.quantity }

// UnitPrice returns the price per unit.
func (i *Item) UnitPrice() float64 { return i.unitPrice }

// Total returns the line total.
func (i *Item) Total() float64 { return i.total }

// Invoice is the aggregate root for a customer bill. Drafts are generated
// automatically when a job is delivered and stay editable until sent; paid
// and cancelled invoices are final.
type Invoice struct {
	id               kernel.UUID
	invoiceNumber    string
	customerID       kernel.UUID
	subtotal         float64
	tax              float64
	total            float64
	status           Status
	issueDate        time.Time
	dueDate          time.Time
	paidDate         *time.Time
	paymentMethod    string
	paymentReference string
	items            []*Item

	isConstructed bool
}

// NewDraftForJob builds the automatic draft invoice for a delivered job:
// one shipping-service line priced from the job's priority and weight,
// issued now and due in thirty days.
func NewDraftForJob(
	id kernel.UUID,
	itemID kernel.UUID,
	invoiceNumber string,
	j *job.Job,
	now time.Time,
) (*Invoice, error) {
	if err := errors.Join(id.Validate(), itemID.Validate()); err != nil {
		return nil, err
	}
	if invoiceNumber == "" {
		return nil, errs.NewValueIsRequiredError("invoiceNumber")
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}

	pricing := PriceFor(j.Priority(), j.WeightKg())
	item := &Item{
		id:            itemID,
		invoiceID:     id,
		jobID:         j.ID(),
		description:   fmt.Sprintf("Shipping Service - %s (%s)", j.TrackingNumber(), j.Priority().Label()),
		quantity:      1,
		unitPrice:     pricing.Subtotal,
		total:         pricing.Subtotal,
		isConstructed: true,
	}

	return &Invoice{
		id:            id,
		invoiceNumber: invoiceNumber,
		customerID:    j.CustomerID(),
		subtotal:      pricing.Subtotal,
		tax:           pricing.Tax,
		total:         pricing.Total,
		status:        StatusDraft,
		issueDate:     now,
		dueDate:       now.AddDate(0, 0, dueInDays),
		items:         []*Item{item},
		isConstructed: true,
	}, nil
}

// RestoreInvoice reconstructs an invoice from persistence.
func RestoreInvoice(
	id kernel.UUID,
	invoiceNumber string,
	customerID kernel.UUID,
	subtotal float64,
	tax float64,
	total float64,
	status Status,
	issueDate time.Time,
	dueDate time.Time,
	paidDate *time.Time,
	paymentMethod string,
	paymentReference string,
	items []*Item,
) (*Invoice, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if invoiceNumber == "" {
		return nil, errs.NewValueIsRequiredError("invoiceNumber")
	}

	return &Invoice{
		id:               id,
		invoiceNumber:    invoiceNumber,
		customerID:       customerID,
		subtotal:         subtotal,
		tax:              tax,
		total:            total,
		status:           status,
		issueDate:        issueDate,
		dueDate:          dueDate,
		paidDate:         paidDate,
		paymentMethod:    paymentMethod,
		paymentReference: paymentReference,
		items:            items,
		isConstructed:    true,
	}, nil
}

// Validate ensures the invoice came from a constructor.
func (inv *Invoice) Validate() error {
	if inv == nil || !inv.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice's unique identifier.
func (inv *Invoice) ID() kernel.UUID { return inv.id }

// InvoiceNumber returns the human-readable invoice code.
func (inv *Invoice) InvoiceNumber() string { return inv.invoiceNumber }

// CustomerID returns the billed customer's id.
func (inv *Invoice) CustomerID() kernel.UUID { return inv.customerID }

// Subtotal returns the pre-tax amount.
func (inv *Invoice) Subtotal() float64 { return inv.subtotal }

// Tax returns the tax amount.
func (inv *Invoice) Tax() float64 { return inv.tax }

// Total returns the amount due.
func (inv *Invoice) Total() float64 { return inv.total }

// Status returns the current billing status.
func (inv *Invoice) Status() Status { return inv.status }

// IssueDate returns when the invoice was issued (re-stamped on send).
func (inv *Invoice) IssueDate() time.Time { return inv.issueDate }

// DueDate returns when payment falls due.
func (inv *Invoice) DueDate() time.Time { return inv.dueDate }

// PaidDate returns when the invoice was paid, or nil.
func (inv *Invoice) PaidDate() *time.Time { return inv.paidDate }

// PaymentMethod returns how the invoice was paid, possibly empty.
func (inv *Invoice) PaymentMethod() string { return inv.paymentMethod }

// PaymentReference returns the payment's external reference, possibly empty.
func (inv *Invoice) PaymentReference() string { return inv.paymentReference }

// Items returns the billed lines.
func (inv *Invoice) Items() []*Item { return inv.items }

// UpdatePatch carries optional edits to a draft invoice. A nil field means
// "leave unchanged"; none of the fields here are clearable, so nil never
// means "clear".
type UpdatePatch struct {
	Subtotal *float64
	Tax      *float64
	Total    *float64
	DueDate  *time.Time
}

// ApplyUpdate edits a draft. Any other status refuses the edit.
func (inv *Invoice) ApplyUpdate(patch UpdatePatch) error {
	if inv.status != StatusDraft {
		return errs.NewInvalidStateErrorWithCause("invoice", inv.status.String(),
			fmt.Errorf("only draft invoices can be edited"))
	}

	if patch.Subtotal != nil {
		inv.subtotal = *patch.Subtotal
	}
	if patch.Tax != nil {
		inv.tax = *patch.Tax
	}
	if patch.Total != nil {
		inv.total = *patch.Total
	}
	if patch.DueDate != nil {
		inv.dueDate = *patch.DueDate
	}
	return nil
}

// Send moves a draft to pending and re-stamps the issue date.
func (inv *Invoice) Send(at time.Time) error {
	if inv.status != StatusDraft {
		return errs.NewInvalidStateErrorWithCause("invoice", inv.status.String(),
			fmt.Errorf("only draft invoices can be sent"))
	}

	inv.status = StatusPending
	inv.issueDate = at
	return nil
}

// MarkPaid settles the invoice from any non-paid status. Paying twice fails.
func (inv *Invoice) MarkPaid(method string, reference string, at time.Time) error {
	if inv.status == StatusPaid {
		return errs.NewInvalidStateErrorWithCause("invoice", inv.status.String(),
			fmt.Errorf("invoice is already paid"))
	}

	inv.status = StatusPaid
	paidAt := at
	inv.paidDate = &paidAt
	inv.paymentMethod = method
	inv.paymentReference = reference
	return nil
}

// Cancel voids the invoice. Paid invoices cannot be cancelled.
func (inv *Invoice) Cancel() error {
	if inv.status == StatusPaid {
		return errs.NewInvalidStateErrorWithCause("invoice", inv.status.String(),
			fmt.Errorf("paid invoices cannot be cancelled"))
	}

	inv.status = StatusCancelled
	return nil
}
