package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/tasks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared testify mocks for the repositories, units of work and follow-up
// contracts the handlers depend on. Every method routes through mock.Called,
// so each test declares the exact call sequence it expects.

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}
func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}
func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}
func (m *MockJobRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*job.Job, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}
func (m *MockJobRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}
func (m *MockJobRepository) GetAllInBatch(ctx context.Context, batchID kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}
func (m *MockJobRepository) TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Bool(0), args.Error(1)
}
func (m *MockJobRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTimelineRepository struct{ mock.Mock }

func (m *MockTimelineRepository) Add(ctx context.Context, entry *job.TimelineEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockTimelineRepository) GetAllForJob(ctx context.Context, jobID kernel.UUID) ([]*job.TimelineEntry, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.TimelineEntry), args.Error(1)
}
func (m *MockTimelineRepository) DeleteAllForJob(ctx context.Context, jobID kernel.UUID) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Add(ctx context.Context, d *job.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDocumentRepository) GetAllForJob(ctx context.Context, jobID kernel.UUID) ([]*job.Document, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Document), args.Error(1)
}
func (m *MockDocumentRepository) DeleteAllForJob(ctx context.Context, jobID kernel.UUID) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Update(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.Batch), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}
func (m *MockInvoiceRepository) JobHasInvoiceItem(ctx context.Context, jobID kernel.UUID) (bool, error) {
	args := m.Called(ctx, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *MockInvoiceRepository) GetAllOverdue(ctx context.Context, before time.Time) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) AddAll(ctx context.Context, ns []*notification.Notification) error {
	args := m.Called(ctx, ns)
	return args.Error(0)
}
func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}
func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) MarkAllReadForUser(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockNotificationRepository) DeleteAllForUser(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
func (m *MockUserRepository) GetAllByRoles(ctx context.Context, roles []kernel.Role) ([]*user.User, error) {
	args := m.Called(ctx, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}
func (m *MockUserRepository) GetAllActive(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

// txMock provides the Begin/Commit/Rollback trio every UoW mock embeds.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockJobUoW struct {
	txMock
	jobs     *MockJobRepository
	timeline *MockTimelineRepository
}

func (m *MockJobUoW) JobRepository() ports.JobRepository           { return m.jobs }
func (m *MockJobUoW) TimelineRepository() ports.TimelineRepository { return m.timeline }

type MockJobUoWFactory struct{ uow *MockJobUoW }

func (m *MockJobUoWFactory) Create() commands.JobUoW { return m.uow }

type MockJobDeletionUoW struct {
	txMock
	jobs      *MockJobRepository
	timeline  *MockTimelineRepository
	documents *MockDocumentRepository
}

func (m *MockJobDeletionUoW) JobRepository() ports.JobRepository           { return m.jobs }
func (m *MockJobDeletionUoW) TimelineRepository() ports.TimelineRepository { return m.timeline }
func (m *MockJobDeletionUoW) DocumentRepository() ports.DocumentRepository { return m.documents }

type MockJobDeletionUoWFactory struct{ uow *MockJobDeletionUoW }

func (m *MockJobDeletionUoWFactory) Create() commands.JobDeletionUoW { return m.uow }

type MockAssignmentUoW struct {
	txMock
	jobs     *MockJobRepository
	timeline *MockTimelineRepository
	users    *MockUserRepository
}

func (m *MockAssignmentUoW) JobRepository() ports.JobRepository           { return m.jobs }
func (m *MockAssignmentUoW) TimelineRepository() ports.TimelineRepository { return m.timeline }
func (m *MockAssignmentUoW) UserRepository() ports.UserRepository         { return m.users }

type MockAssignmentUoWFactory struct{ uow *MockAssignmentUoW }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW { return m.uow }

type MockBatchUoW struct {
	txMock
	batches  *MockBatchRepository
	jobs     *MockJobRepository
	timeline *MockTimelineRepository
}

func (m *MockBatchUoW) BatchRepository() ports.BatchRepository       { return m.batches }
func (m *MockBatchUoW) JobRepository() ports.JobRepository           { return m.jobs }
func (m *MockBatchUoW) TimelineRepository() ports.TimelineRepository { return m.timeline }

type MockBatchUoWFactory struct{ uow *MockBatchUoW }

func (m *MockBatchUoWFactory) Create() commands.BatchUoW { return m.uow }

type MockInvoiceUoW struct {
	txMock
	invoices *MockInvoiceRepository
}

func (m *MockInvoiceUoW) InvoiceRepository() ports.InvoiceRepository { return m.invoices }

type MockInvoiceUoWFactory struct{ uow *MockInvoiceUoW }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW { return m.uow }

type MockDraftInvoiceUoW struct {
	txMock
	invoices *MockInvoiceRepository
	jobs     *MockJobRepository
}

func (m *MockDraftInvoiceUoW) InvoiceRepository() ports.InvoiceRepository { return m.invoices }
func (m *MockDraftInvoiceUoW) JobRepository() ports.JobRepository         { return m.jobs }

type MockDraftInvoiceUoWFactory struct{ uow *MockDraftInvoiceUoW }

func (m *MockDraftInvoiceUoWFactory) Create() commands.DraftInvoiceUoW { return m.uow }

type MockNotificationUoW struct {
	txMock
	notifications *MockNotificationRepository
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	return m.notifications
}

type MockNotificationUoWFactory struct{ uow *MockNotificationUoW }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW { return m.uow }

type MockDispatchUoW struct {
	txMock
	notifications *MockNotificationRepository
	users         *MockUserRepository
}

func (m *MockDispatchUoW) NotificationRepository() ports.NotificationRepository {
	return m.notifications
}
func (m *MockDispatchUoW) UserRepository() ports.UserRepository { return m.users }

type MockDispatchUoWFactory struct{ uow *MockDispatchUoW }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW { return m.uow }

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) Handle(ctx context.Context, cmd commands.DispatchNotificationCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockDraftInvoiceCreator struct{ mock.Mock }

func (m *MockDraftInvoiceCreator) Handle(ctx context.Context, cmd commands.CreateDraftInvoiceCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

// Test fixtures.

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func newTestAddress(t *testing.T) job.Address {
	t.Helper()
	addr, err := job.NewAddress("12 Harbour Road", "Leeds", "LS1 4AB")
	require.NoError(t, err)
	return addr
}

func newTestJob(t *testing.T, status job.Status) *job.Job {
	t.Helper()
	j, err := job.RestoreJob(
		kernel.NewUUID(), "SHIP-20260830-A1B2C", kernel.NewUUID(),
		newTestAddress(t), newTestAddress(t),
		4.5, 120, 1, job.PriorityStandard, status, nil, nil, nil)
	require.NoError(t, err)
	return j
}

func syncRunner() tasks.Runner {
	return tasks.NewSyncRunner(slog.New(slog.DiscardHandler))
}
