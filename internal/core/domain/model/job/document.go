package job

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrDocumentIsNotConstructed is returned when a Document was not created
// through NewDocument.
var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")

// Document is a file attached to a job (proof of delivery, customs papers).
// Documents are owned exclusively by their job and removed with it; the file
// content itself lives in external storage under StorageKey.
type Document struct {
	id          kernel.UUID
	jobID       kernel.UUID
	name        string
	contentType string
	storageKey  string
	uploadedBy  kernel.UUID
	uploadedAt  time.Time

	isConstructed bool
}

// NewDocument attaches a stored file to a job.
func NewDocument(
	id kernel.UUID,
	jobID kernel.UUID,
	name string,
	contentType string,
	storageKey string,
	uploadedBy kernel.UUID,
	uploadedAt time.Time,
) (*Document, error) {
	if err := errors.Join(
		id.Validate(),
		jobID.Validate(),
		uploadedBy.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if storageKey == "" {
		return nil, errs.NewValueIsRequiredError("storageKey")
	}

	return &Document{
		id:            id,
		jobID:         jobID,
		name:          name,
		contentType:   contentType,
		storageKey:    storageKey,
		uploadedBy:    uploadedBy,
		uploadedAt:    uploadedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the document came from NewDocument.
func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

// ID returns the document's unique identifier.
func (d *Document) ID() kernel.UUID {
	return d.id
}

// JobID returns the owning job's id.
func (d *Document) JobID() kernel.UUID {
	return d.jobID
}

// Name returns the file name shown to users.
func (d *Document) Name() string {
	return d.name
}

// ContentType returns the MIME type, possibly empty.
func (d *Document) ContentType() string {
	return d.contentType
}

// StorageKey returns the key of the file in external storage.
func (d *Document) StorageKey() string {
	return d.storageKey
}

// UploadedBy returns the id of the uploading user.
func (d *Document) UploadedBy() kernel.UUID {
	return d.uploadedBy
}

// UploadedAt returns the upload time.
func (d *Document) UploadedAt() time.Time {
	return d.uploadedAt
}
