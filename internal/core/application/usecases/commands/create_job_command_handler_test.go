package commands_test

import (
	"errors"
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

func newCreateJobCommand(t *testing.T, actor kernel.Actor) commands.CreateJobCommand {
	t.Helper()
	cmd, err := commands.NewCreateJobCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		newTestAddress(t), newTestAddress(t),
		4.5, 120, 1, job.PriorityExpress, actor)
	require.NoError(t, err)
	return cmd
}

func TestCreateJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := newActor(t, kernel.RoleCustomerService)
	cmd := newCreateJobCommand(t, actor)

	jobs := new(MockJobRepository)
	timeline := new(MockTimelineRepository)
	uow := &MockJobUoW{jobs: jobs, timeline: timeline}
	dispatcher := new(MockNotificationDispatcher)

	var added *job.Job
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		jobs.On("TrackingNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once(),
		jobs.On("Add", ctx, mock.AnythingOfType("*job.Job")).Run(func(args mock.Arguments) {
			added = args.Get(1).(*job.Job)
		}).Return(nil).Once(),
		timeline.On("Add", ctx, mock.AnythingOfType("*job.TimelineEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	dispatcher.On("Handle", mock.Anything, mock.AnythingOfType("commands.DispatchNotificationCommand")).
		Run(func(args mock.Arguments) {
			dispatchCmd := args.Get(1).(commands.DispatchNotificationCommand)
			assert.Equal(t, notification.EventJobCreated, dispatchCmd.Event().Type)
			assert.Equal(t, actor.ID(), dispatchCmd.Event().ActorID)
			assert.Equal(t, "job", dispatchCmd.RelatedEntityType())
		}).Return(nil).Once()

	h := commands.NewCreateJobCommandHandler(&MockJobUoWFactory{uow: uow}, dispatcher, syncRunner())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, job.StatusPending, added.Status())
	assert.NotEmpty(t, added.TrackingNumber())
	jobs.AssertExpectations(t)
	timeline.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_DeniedForNonPrivilegedRoles(t *testing.T) {
	ctx := t.Context()
	dispatcher := new(MockNotificationDispatcher)

	for _, role := range []kernel.Role{
		kernel.RoleCustomer, kernel.RoleDriver, kernel.RoleDeliveryAgent, kernel.RoleWarehouse,
	} {
		cmd := newCreateJobCommand(t, newActor(t, role))
		h := commands.NewCreateJobCommandHandler(
			&MockJobUoWFactory{uow: &MockJobUoW{}}, dispatcher, syncRunner())

		err := h.Handle(ctx, cmd)

		require.Error(t, err, role)
		assert.ErrorIs(t, err, errs.ErrPermissionDenied, role)
	}
}

func TestCreateJobCommandHandler_Handle_RetriesTrackingCollision(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateJobCommand(t, newActor(t, kernel.RoleAdmin))

	jobs := new(MockJobRepository)
	timeline := new(MockTimelineRepository)
	uow := &MockJobUoW{jobs: jobs, timeline: timeline}
	dispatcher := new(MockNotificationDispatcher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		jobs.On("TrackingNumberExists", ctx, mock.AnythingOfType("string")).Return(true, nil).Twice(),
		jobs.On("TrackingNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once(),
		jobs.On("Add", ctx, mock.AnythingOfType("*job.Job")).Return(nil).Once(),
		timeline.On("Add", ctx, mock.AnythingOfType("*job.TimelineEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	dispatcher.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewCreateJobCommandHandler(&MockJobUoWFactory{uow: uow}, dispatcher, syncRunner())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	jobs.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_GivesUpAfterExhaustedRetries(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateJobCommand(t, newActor(t, kernel.RoleAdmin))

	jobs := new(MockJobRepository)
	uow := &MockJobUoW{jobs: jobs, timeline: new(MockTimelineRepository)}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobs.On("TrackingNumberExists", ctx, mock.AnythingOfType("string")).Return(true, nil).Times(10)

	h := commands.NewCreateJobCommandHandler(
		&MockJobUoWFactory{uow: uow}, new(MockNotificationDispatcher), syncRunner())
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	jobs.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateJobCommandHandler(
		&MockJobUoWFactory{uow: &MockJobUoW{}}, new(MockNotificationDispatcher), syncRunner())

	err := h.Handle(t.Context(), commands.CreateJobCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateJobCommandIsNotConstructed)
}

func TestCreateJobCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateJobCommand(t, newActor(t, kernel.RoleAdmin))

	jobs := new(MockJobRepository)
	uow := &MockJobUoW{jobs: jobs, timeline: new(MockTimelineRepository)}
	dispatcher := new(MockNotificationDispatcher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		jobs.On("TrackingNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once(),
		jobs.On("Add", ctx, mock.AnythingOfType("*job.Job")).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateJobCommandHandler(&MockJobUoWFactory{uow: uow}, dispatcher, syncRunner())
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	dispatcher.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
