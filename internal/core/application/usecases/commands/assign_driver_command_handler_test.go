package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := newActor(t, kernel.RoleAdmin)
	j := newTestJob(t, job.StatusPending)
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand(j.ID(), driverID, actor)
	require.NoError(t, err)

	jobs := new(MockJobRepository)
	timeline := new(MockTimelineRepository)
	users := new(MockUserRepository)
	uow := &MockAssignmentUoW{jobs: jobs, timeline: timeline, users: users}

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		jobs.On("Get", ctx, j.ID()).Return(j, nil).Once(),
		users.On("Get", ctx, driverID).Return(restoreUser(t, driverID, kernel.RoleDriver), nil).Once(),
		jobs.On("Update", ctx, j).Return(nil).Once(),
		timeline.On("Add", ctx, mock.AnythingOfType("*job.TimelineEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Handle", mock.Anything, mock.AnythingOfType("commands.DispatchNotificationCommand")).
		Run(func(args mock.Arguments) {
			dispatchCmd := args.Get(1).(commands.DispatchNotificationCommand)
			assert.Equal(t, notification.EventDriverAssigned, dispatchCmd.Event().Type)
			require.NotNil(t, dispatchCmd.Event().AssigneeID)
			assert.True(t, dispatchCmd.Event().AssigneeID.IsEqual(driverID))
		}).Return(nil).Once()

	h := commands.NewAssignDriverCommandHandler(&MockAssignmentUoWFactory{uow: uow}, dispatcher, syncRunner())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.StatusAssigned, j.Status())
	require.NotNil(t, j.Driver())
	assert.True(t, j.Driver().IsEqual(driverID))
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_RejectsNonDriverUser(t *testing.T) {
	ctx := t.Context()
	j := newTestJob(t, job.StatusPending)
	targetID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand(j.ID(), targetID, newActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	jobs := new(MockJobRepository)
	users := new(MockUserRepository)
	uow := &MockAssignmentUoW{jobs: jobs, timeline: new(MockTimelineRepository), users: users}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobs.On("Get", ctx, j.ID()).Return(j, nil).Once()
	users.On("Get", ctx, targetID).Return(restoreUser(t, targetID, kernel.RoleCustomer), nil).Once()

	h := commands.NewAssignDriverCommandHandler(
		&MockAssignmentUoWFactory{uow: uow}, new(MockNotificationDispatcher), syncRunner())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, job.StatusPending, j.Status())
}

func TestAssignDeliveryAgentCommandHandler_Handle_ForcesOutForDelivery(t *testing.T) {
	ctx := t.Context()
	j := newTestJob(t, job.StatusArrivedAtDestination)
	agentID := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryAgentCommand(j.ID(), agentID, newActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	jobs := new(MockJobRepository)
	users := new(MockUserRepository)
	uow := &MockAssignmentUoW{jobs: jobs, timeline: new(MockTimelineRepository), users: users}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobs.On("Get", ctx, j.ID()).Return(j, nil).Once()
	users.On("Get", ctx, agentID).Return(restoreUser(t, agentID, kernel.RoleDeliveryAgent), nil).Once()
	jobs.On("Update", ctx, j).Return(nil).Once()
	uow.timeline.On("Add", ctx, mock.Anything).Return(nil).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewAssignDeliveryAgentCommandHandler(
		&MockAssignmentUoWFactory{uow: uow}, dispatcher, syncRunner())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.StatusOutForDelivery, j.Status())
	require.NotNil(t, j.DeliveryAgent())
	assert.True(t, j.DeliveryAgent().IsEqual(agentID))
}

func TestAssignDriverCommandHandler_Handle_RejectsInactiveDriver(t *testing.T) {
	ctx := t.Context()
	j := newTestJob(t, job.StatusPending)
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand(j.ID(), driverID, newActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	inactive, err := user.RestoreUser(driverID, "former driver", kernel.RoleDriver, false)
	require.NoError(t, err)

	jobs := new(MockJobRepository)
	users := new(MockUserRepository)
	uow := &MockAssignmentUoW{jobs: jobs, timeline: new(MockTimelineRepository), users: users}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobs.On("Get", ctx, j.ID()).Return(j, nil).Once()
	users.On("Get", ctx, driverID).Return(inactive, nil).Once()

	h := commands.NewAssignDriverCommandHandler(
		&MockAssignmentUoWFactory{uow: uow}, new(MockNotificationDispatcher), syncRunner())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
