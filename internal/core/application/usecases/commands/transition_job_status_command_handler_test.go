package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionJobStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := newActor(t, kernel.RoleWarehouse)
	j := newTestJob(t, job.StatusCollected)
	cmd, err := commands.NewTransitionJobStatusCommand(j.ID(), job.StatusAtWarehouse, "scanned in", actor)
	require.NoError(t, err)

	jobs := new(MockJobRepository)
	timeline := new(MockTimelineRepository)
	uow := &MockJobUoW{jobs: jobs, timeline: timeline}
	dispatcher := new(MockNotificationDispatcher)

	var entry *job.TimelineEntry
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		jobs.On("Get", ctx, j.ID()).Return(j, nil).Once(),
		jobs.On("Update", ctx, j).Return(nil).Once(),
		timeline.On("Add", ctx, mock.AnythingOfType("*job.TimelineEntry")).Run(func(args mock.Arguments) {
			entry = args.Get(1).(*job.TimelineEntry)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	dispatcher.On("Handle", mock.Anything, mock.AnythingOfType("commands.DispatchNotificationCommand")).
		Run(func(args mock.Arguments) {
			dispatchCmd := args.Get(1).(commands.DispatchNotificationCommand)
			assert.Equal(t, notification.EventJobStatusChanged, dispatchCmd.Event().Type)
			assert.Equal(t, job.StatusAtWarehouse, dispatchCmd.Event().NewStatus)
		}).Return(nil).Once()

	h := commands.NewTransitionJobStatusCommandHandler(
		&MockJobUoWFactory{uow: uow}, new(MockDraftInvoiceCreator), dispatcher, syncRunner())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.StatusAtWarehouse, j.Status())
	require.NotNil(t, entry)
	assert.Equal(t, job.StatusAtWarehouse, entry.Status())
	assert.Equal(t, "scanned in", entry.Notes())
	assert.Equal(t, actor.ID(), entry.UpdatedBy())
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestTransitionJobStatusCommandHandler_Handle_DeliveredTriggersDraftInvoice(t *testing.T) {
	ctx := t.Context()
	actor := newActor(t, kernel.RoleAdmin)
	j := newTestJob(t, job.StatusOutForDelivery)
	cmd, err := commands.NewTransitionJobStatusCommand(j.ID(), job.StatusDelivered, "", actor)
	require.NoError(t, err)

	jobs := new(MockJobRepository)
	uow := &MockJobUoW{jobs: jobs, timeline: new(MockTimelineRepository)}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobs.On("Get", ctx, j.ID()).Return(j, nil).Once()
	jobs.On("Update", ctx, j).Return(nil).Once()
	uow.timeline.On("Add", ctx, mock.Anything).Return(nil).Once()

	invoiceCreator := new(MockDraftInvoiceCreator)
	invoiceCreator.On("Handle", mock.Anything, mock.AnythingOfType("commands.CreateDraftInvoiceCommand")).
		Run(func(args mock.Arguments) {
			invoiceCmd := args.Get(1).(commands.CreateDraftInvoiceCommand)
			assert.Equal(t, j.ID(), invoiceCmd.JobID())
			assert.Equal(t, actor.ID(), invoiceCmd.ActorID())
		}).Return(nil).Once()
	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewTransitionJobStatusCommandHandler(
		&MockJobUoWFactory{uow: uow}, invoiceCreator, dispatcher, syncRunner())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	invoiceCreator.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestTransitionJobStatusCommandHandler_Handle_NonDeliveredSkipsInvoice(t *testing.T) {
	ctx := t.Context()
	j := newTestJob(t, job.StatusPending)
	cmd, err := commands.NewTransitionJobStatusCommand(
		j.ID(), job.StatusCollected, "", newActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	jobs := new(MockJobRepository)
	uow := &MockJobUoW{jobs: jobs, timeline: new(MockTimelineRepository)}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobs.On("Get", ctx, j.ID()).Return(j, nil).Once()
	jobs.On("Update", ctx, j).Return(nil).Once()
	uow.timeline.On("Add", ctx, mock.Anything).Return(nil).Once()

	invoiceCreator := new(MockDraftInvoiceCreator)
	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewTransitionJobStatusCommandHandler(
		&MockJobUoWFactory{uow: uow}, invoiceCreator, dispatcher, syncRunner())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	invoiceCreator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestTransitionJobStatusCommandHandler_Handle_UnassignedDriverDenied(t *testing.T) {
	ctx := t.Context()
	j := newTestJob(t, job.StatusPending)
	cmd, err := commands.NewTransitionJobStatusCommand(
		j.ID(), job.StatusCollected, "", newActor(t, kernel.RoleDriver))
	require.NoError(t, err)

	jobs := new(MockJobRepository)
	uow := &MockJobUoW{jobs: jobs, timeline: new(MockTimelineRepository)}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobs.On("Get", ctx, j.ID()).Return(j, nil).Once()

	h := commands.NewTransitionJobStatusCommandHandler(
		&MockJobUoWFactory{uow: uow}, new(MockDraftInvoiceCreator),
		new(MockNotificationDispatcher), syncRunner())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTransitionJobStatusCommandHandler_Handle_AssignedDriverAllowed(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	actor, err := kernel.NewActor(driverID, kernel.RoleDriver)
	require.NoError(t, err)

	j, err := job.RestoreJob(
		kernel.NewUUID(), "SHIP-20260830-Z9Y8X", kernel.NewUUID(),
		newTestAddress(t), newTestAddress(t),
		2, 50, 1, job.PriorityStandard, job.StatusAssigned, &driverID, nil, nil)
	require.NoError(t, err)

	cmd, err := commands.NewTransitionJobStatusCommand(j.ID(), job.StatusCollected, "", actor)
	require.NoError(t, err)

	jobs := new(MockJobRepository)
	uow := &MockJobUoW{jobs: jobs, timeline: new(MockTimelineRepository)}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobs.On("Get", ctx, j.ID()).Return(j, nil).Once()
	jobs.On("Update", ctx, j).Return(nil).Once()
	uow.timeline.On("Add", ctx, mock.Anything).Return(nil).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewTransitionJobStatusCommandHandler(
		&MockJobUoWFactory{uow: uow}, new(MockDraftInvoiceCreator), dispatcher, syncRunner())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.StatusCollected, j.Status())
}

func TestTransitionJobStatusCommandHandler_Handle_JobNotFound(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	cmd, err := commands.NewTransitionJobStatusCommand(
		jobID, job.StatusCollected, "", newActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	jobs := new(MockJobRepository)
	uow := &MockJobUoW{jobs: jobs, timeline: new(MockTimelineRepository)}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobs.On("Get", ctx, jobID).Return(nil, errs.NewObjectNotFoundError("job", jobID)).Once()

	h := commands.NewTransitionJobStatusCommandHandler(
		&MockJobUoWFactory{uow: uow}, new(MockDraftInvoiceCreator),
		new(MockNotificationDispatcher), syncRunner())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestTransitionJobStatusCommandHandler_Handle_LeavingBatchFamilyClearsBatchID(t *testing.T) {
	ctx := t.Context()
	batchID := kernel.NewUUID()
	j, err := job.RestoreJob(
		kernel.NewUUID(), "SHIP-20260830-B4TCH", kernel.NewUUID(),
		newTestAddress(t), newTestAddress(t),
		2, 50, 1, job.PriorityStandard, job.StatusInTransit, nil, nil, &batchID)
	require.NoError(t, err)

	cmd, err := commands.NewTransitionJobStatusCommand(
		j.ID(), job.StatusDelivered, "", newActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	jobs := new(MockJobRepository)
	uow := &MockJobUoW{jobs: jobs, timeline: new(MockTimelineRepository)}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobs.On("Get", ctx, j.ID()).Return(j, nil).Once()
	jobs.On("Update", ctx, j).Return(nil).Once()
	uow.timeline.On("Add", ctx, mock.Anything).Return(nil).Once()

	invoiceCreator := new(MockDraftInvoiceCreator)
	invoiceCreator.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()
	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewTransitionJobStatusCommandHandler(
		&MockJobUoWFactory{uow: uow}, invoiceCreator, dispatcher, syncRunner())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, j.Batch())
}
