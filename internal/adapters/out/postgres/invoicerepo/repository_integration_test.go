package invoicerepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/invoicerepo"
	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InvoiceRepositoryIntegrationTestSuite verifies invoice persistence,
// the per-job billing guard and the overdue selection.
type InvoiceRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *invoicerepo.GormInvoiceRepository
}

func (suite *InvoiceRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&invoicerepo.InvoiceDTO{}, &invoicerepo.ItemDTO{}))
}

func (suite *InvoiceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE invoices, invoice_items").Error)
	suite.repository = invoicerepo.NewGormInvoiceRepository(suite.db)
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InvoiceRepositoryIntegrationTestSuite) createDraft(
	trackingNumber string,
	invoiceNumber string,
	now time.Time,
) (*invoice.Invoice, kernel.UUID) {
	pickup, err := job.NewAddress("12 Harbour Road", "Leeds", "LS1 4AB")
	suite.Require().NoError(err)
	delivery, err := job.NewAddress("3 Mill Lane", "York", "YO1 7HU")
	suite.Require().NoError(err)

	j, err := job.NewJob(kernel.NewUUID(), trackingNumber, kernel.NewUUID(),
		pickup, delivery, 10, 250, 1, job.PriorityUrgent)
	suite.Require().NoError(err)

	inv, err := invoice.NewDraftForJob(kernel.NewUUID(), kernel.NewUUID(), invoiceNumber, j, now)
	suite.Require().NoError(err)
	return inv, j.ID()
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripWithItems() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	inv, jobID := suite.createDraft("SHIP-20260830-INV01", "INV-20260830-0001", now)

	suite.Require().NoError(suite.repository.Add(ctx, inv))

	loaded, err := suite.repository.Get(ctx, inv.ID())
	suite.Require().NoError(err)
	suite.Equal("INV-20260830-0001", loaded.InvoiceNumber())
	suite.Equal(invoice.StatusDraft, loaded.Status())
	suite.InDelta(140.0, loaded.Subtotal(), 0.001)
	suite.InDelta(28.0, loaded.Tax(), 0.001)
	suite.InDelta(168.0, loaded.Total(), 0.001)
	suite.Require().Len(loaded.Items(), 1)
	suite.True(loaded.Items()[0].JobID().IsEqual(jobID))
	suite.Equal("Shipping Service - SHIP-20260830-INV01 (Urgent)", loaded.Items()[0].Description())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestJobHasInvoiceItem() {
	ctx := context.Background()
	now := time.Now().UTC()
	inv, jobID := suite.createDraft("SHIP-20260830-INV02", "INV-20260830-0002", now)
	suite.Require().NoError(suite.repository.Add(ctx, inv))

	billed, err := suite.repository.JobHasInvoiceItem(ctx, jobID)
	suite.Require().NoError(err)
	suite.True(billed)

	billed, err = suite.repository.JobHasInvoiceItem(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(billed)
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestUpdate_PersistsPayment() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	inv, _ := suite.createDraft("SHIP-20260830-INV03", "INV-20260830-0003", now)
	suite.Require().NoError(suite.repository.Add(ctx, inv))

	suite.Require().NoError(inv.Send(now))
	suite.Require().NoError(inv.MarkPaid("bank_transfer", "TXN-77", now))
	suite.Require().NoError(suite.repository.Update(ctx, inv))

	loaded, err := suite.repository.Get(ctx, inv.ID())
	suite.Require().NoError(err)
	suite.Equal(invoice.StatusPaid, loaded.Status())
	suite.Equal("bank_transfer", loaded.PaymentMethod())
	suite.Equal("TXN-77", loaded.PaymentReference())
	suite.Require().NotNil(loaded.PaidDate())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGetAllOverdue_SelectsUnpaidPastDue() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	longAgo := now.AddDate(0, -2, 0)

	overdueDraft, _ := suite.createDraft("SHIP-20260830-INV04", "INV-20260830-0004", longAgo)
	suite.Require().NoError(suite.repository.Add(ctx, overdueDraft))

	overduePending, _ := suite.createDraft("SHIP-20260830-INV05", "INV-20260830-0005", longAgo)
	suite.Require().NoError(overduePending.Send(longAgo))
	suite.Require().NoError(suite.repository.Add(ctx, overduePending))

	paid, _ := suite.createDraft("SHIP-20260830-INV06", "INV-20260830-0006", longAgo)
	suite.Require().NoError(paid.Send(longAgo))
	suite.Require().NoError(paid.MarkPaid("cash", "", now))
	suite.Require().NoError(suite.repository.Add(ctx, paid))

	current, _ := suite.createDraft("SHIP-20260830-INV07", "INV-20260830-0007", now)
	suite.Require().NoError(suite.repository.Add(ctx, current))

	overdue, err := suite.repository.GetAllOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(overdue, 2)

	numbers := []string{overdue[0].InvoiceNumber(), overdue[1].InvoiceNumber()}
	suite.ElementsMatch(numbers, []string{"INV-20260830-0004", "INV-20260830-0005"})
	for _, inv := range overdue {
		suite.Require().Len(inv.Items(), 1)
	}
}

func TestInvoiceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceRepositoryIntegrationTestSuite))
}
