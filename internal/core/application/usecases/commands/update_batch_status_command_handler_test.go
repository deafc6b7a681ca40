package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPreparedBatch(t *testing.T, status batch.Status) *batch.Batch {
	t.Helper()
	b, err := batch.RestoreBatch(
		kernel.NewUUID(), "BATCH-X1Y", "Leeds outbound", "Leeds -> Lagos", "AirFreight Co", "",
		2, 5.5, 140, status, nil, "")
	require.NoError(t, err)
	return b
}

func newBatchedJob(t *testing.T, batchID kernel.UUID) *job.Job {
	t.Helper()
	driverID := kernel.NewUUID()
	j, err := job.RestoreJob(
		kernel.NewUUID(), "SHIP-20260830-"+kernel.NewUUID().String()[:5], kernel.NewUUID(),
		newTestAddress(t), newTestAddress(t),
		2, 50, 1, job.PriorityStandard, job.StatusBatched, &driverID, nil, &batchID)
	require.NoError(t, err)
	return j
}

func TestUpdateBatchStatusCommandHandler_Handle_ShippedCascadesToMembers(t *testing.T) {
	ctx := t.Context()
	actor := newActor(t, kernel.RoleWarehouse)
	b := newPreparedBatch(t, batch.StatusInPreparation)
	j1 := newBatchedJob(t, b.ID())
	j2 := newBatchedJob(t, b.ID())
	cmd, err := commands.NewUpdateBatchStatusCommand(b.ID(), batch.StatusShipped, "left the dock", actor)
	require.NoError(t, err)

	batches := new(MockBatchRepository)
	jobs := new(MockJobRepository)
	timeline := new(MockTimelineRepository)
	uow := &MockBatchUoW{batches: batches, jobs: jobs, timeline: timeline}

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	batches.On("Get", ctx, b.ID()).Return(b, nil).Once()
	batches.On("Update", ctx, b).Return(nil).Once()
	jobs.On("GetAllInBatch", ctx, b.ID()).Return([]*job.Job{j1, j2}, nil).Once()
	jobs.On("Update", ctx, mock.AnythingOfType("*job.Job")).Return(nil).Twice()
	timeline.On("Add", ctx, mock.AnythingOfType("*job.TimelineEntry")).Return(nil).Twice()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Handle", mock.Anything, mock.AnythingOfType("commands.DispatchNotificationCommand")).
		Return(nil).Twice()

	h := commands.NewUpdateBatchStatusCommandHandler(&MockBatchUoWFactory{uow: uow}, dispatcher, syncRunner())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, batch.StatusShipped, b.Status())
	require.NotNil(t, b.ShippedAt())
	assert.WithinDuration(t, time.Now().UTC(), *b.ShippedAt(), time.Minute)
	assert.Equal(t, "left the dock", b.Notes())
	assert.Equal(t, job.StatusShipped, j1.Status())
	assert.Equal(t, job.StatusShipped, j2.Status())
	require.NotNil(t, j1.Batch())
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestUpdateBatchStatusCommandHandler_Handle_DistributedCascadesToOutForDelivery(t *testing.T) {
	ctx := t.Context()
	b := newPreparedBatch(t, batch.StatusArrived)
	j1 := newBatchedJob(t, b.ID())
	cmd, err := commands.NewUpdateBatchStatusCommand(
		b.ID(), batch.StatusDistributed, "", newActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	batches := new(MockBatchRepository)
	jobs := new(MockJobRepository)
	uow := &MockBatchUoW{batches: batches, jobs: jobs, timeline: new(MockTimelineRepository)}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	batches.On("Get", ctx, b.ID()).Return(b, nil).Once()
	batches.On("Update", ctx, b).Return(nil).Once()
	jobs.On("GetAllInBatch", ctx, b.ID()).Return([]*job.Job{j1}, nil).Once()
	jobs.On("Update", ctx, j1).Return(nil).Once()
	uow.timeline.On("Add", ctx, mock.Anything).Return(nil).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewUpdateBatchStatusCommandHandler(&MockBatchUoWFactory{uow: uow}, dispatcher, syncRunner())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.StatusOutForDelivery, j1.Status())
	assert.Nil(t, b.ShippedAt())
}

func TestUpdateBatchStatusCommandHandler_Handle_InPreparationDoesNotCascade(t *testing.T) {
	ctx := t.Context()
	b := newPreparedBatch(t, batch.StatusShipped)
	cmd, err := commands.NewUpdateBatchStatusCommand(
		b.ID(), batch.StatusInPreparation, "", newActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	batches := new(MockBatchRepository)
	jobs := new(MockJobRepository)
	uow := &MockBatchUoW{batches: batches, jobs: jobs, timeline: new(MockTimelineRepository)}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	batches.On("Get", ctx, b.ID()).Return(b, nil).Once()
	batches.On("Update", ctx, b).Return(nil).Once()

	dispatcher := new(MockNotificationDispatcher)
	h := commands.NewUpdateBatchStatusCommandHandler(&MockBatchUoWFactory{uow: uow}, dispatcher, syncRunner())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	jobs.AssertNotCalled(t, "GetAllInBatch", mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestUpdateBatchStatusCommandHandler_Handle_ReshippingRestampsShippedAt(t *testing.T) {
	ctx := t.Context()
	firstShipped := time.Now().UTC().Add(-48 * time.Hour)
	b, err := batch.RestoreBatch(
		kernel.NewUUID(), "BATCH-Z9Z", "Reship", "Leeds -> Lagos", "", "",
		1, 2, 50, batch.StatusShipped, &firstShipped, "")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateBatchStatusCommand(
		b.ID(), batch.StatusShipped, "", newActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	batches := new(MockBatchRepository)
	jobs := new(MockJobRepository)
	uow := &MockBatchUoW{batches: batches, jobs: jobs, timeline: new(MockTimelineRepository)}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	batches.On("Get", ctx, b.ID()).Return(b, nil).Once()
	batches.On("Update", ctx, b).Return(nil).Once()
	jobs.On("GetAllInBatch", ctx, b.ID()).Return([]*job.Job{}, nil).Once()

	h := commands.NewUpdateBatchStatusCommandHandler(
		&MockBatchUoWFactory{uow: uow}, new(MockNotificationDispatcher), syncRunner())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, b.ShippedAt())
	assert.True(t, b.ShippedAt().After(firstShipped))
}
