// Package invoicerepo persists invoice aggregates together with their line
// items. Items never change after creation; updates only touch the invoice
// row itself.
package invoicerepo

import (
	"time"

	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO is the database row for an invoice aggregate.
type InvoiceDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceNumber    string    `gorm:"uniqueIndex"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index"`
	Subtotal         float64
	Tax              float64
	Total            float64
	Status           string `gorm:"index"`
	IssueDate        time.Time
	DueDate          time.Time `gorm:"index"`
	PaidDate         *time.Time
	PaymentMethod    string
	PaymentReference string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides GORM's default naming to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// ItemDTO is the database row for one billed line. JobID is uniquely
// indexed: at most one line ever bills a given job, which backs the
// idempotency of automatic draft generation.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;index"`
	JobID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Description string
	Quantity    int
	UnitPrice   float64
	Total       float64
}

// TableName overrides GORM's default naming to use "invoice_items".
func (ItemDTO) TableName() string {
	return "invoice_items"
}

func fromDomain(aggregate *invoice.Invoice) (InvoiceDTO, []ItemDTO) {
	dto := InvoiceDTO{
		ID:               aggregate.ID().Bytes(),
		InvoiceNumber:    aggregate.InvoiceNumber(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		Subtotal:         aggregate.Subtotal(),
		Tax:              aggregate.Tax(),
		Total:            aggregate.Total(),
		Status:           aggregate.Status().String(),
		IssueDate:        aggregate.IssueDate(),
		DueDate:          aggregate.DueDate(),
		PaidDate:         aggregate.PaidDate(),
		PaymentMethod:    aggregate.PaymentMethod(),
		PaymentReference: aggregate.PaymentReference(),
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			InvoiceID:   item.InvoiceID().Bytes(),
			JobID:       item.JobID().Bytes(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Total:       item.Total(),
		})
	}

	return dto, items
}

func toDomain(dto InvoiceDTO, itemDTOs []ItemDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*invoice.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return invoice.RestoreInvoice(
		id,
		dto.InvoiceNumber,
		customerID,
		dto.Subtotal,
		dto.Tax,
		dto.Total,
		invoice.Status(dto.Status),
		dto.IssueDate,
		dto.DueDate,
		dto.PaidDate,
		dto.PaymentMethod,
		dto.PaymentReference,
		items,
	)
}

func itemToDomain(dto ItemDTO) (*invoice.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	invoiceID, err := kernel.UUIDFromBytes(dto.InvoiceID[:])
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	return invoice.RestoreItem(id, invoiceID, jobID, dto.Description, dto.Quantity, dto.UnitPrice, dto.Total)
}
