package invoicerepo

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Add saves a new invoice and its line items to the database.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

// Update saves changes to an existing invoice row. Line items are frozen at
// creation and are not touched here.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get retrieves an invoice with its line items by ID.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	items, err := r.itemsFor(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

// JobHasInvoiceItem reports whether any line item already bills the job.
func (r *GormInvoiceRepository) JobHasInvoiceItem(ctx context.Context, jobID kernel.UUID) (bool, error) {
	if err := jobID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("job_id = ?", jobID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllOverdue retrieves unpaid invoices whose due date has passed: drafts
// and pending invoices with a due date before the given moment.
func (r *GormInvoiceRepository) GetAllOverdue(
	ctx context.Context,
	before time.Time,
) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{invoice.StatusDraft.String(), invoice.StatusPending.String()}).
		Where("due_date < ?", before).
		Order("due_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		items, itemsErr := r.itemsFor(ctx, dto.ID)
		if itemsErr != nil {
			return nil, itemsErr
		}

		inv, invErr := toDomain(dto, items)
		if invErr != nil {
			return nil, invErr
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

func (r *GormInvoiceRepository) itemsFor(ctx context.Context, invoiceID uuid.UUID) ([]ItemDTO, error) {
	var items []ItemDTO
	err := r.db.WithContext(ctx).
		Order("description, id").
		Find(&items, "invoice_id = ?", invoiceID).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
