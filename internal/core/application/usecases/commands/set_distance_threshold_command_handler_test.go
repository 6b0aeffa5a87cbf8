package commands_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetDistanceThresholdCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := mustParty(t, "registry-owner")
	cmd, err := commands.NewSetDistanceThresholdCommand(owner, 750)
	require.NoError(t, err)

	repo := new(MockSettingsRepository)
	uow := new(MockSettingsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(repo).Once(),
		repo.On("SetDistanceThreshold", mock.Anything, int64(750)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettingsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetDistanceThresholdCommandHandler(factory, owner)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSetDistanceThresholdCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	owner := mustParty(t, "registry-owner")
	intruder := mustParty(t, "sender-1")
	cmd, err := commands.NewSetDistanceThresholdCommand(intruder, 750)
	require.NoError(t, err)

	factory := new(MockSettingsUoWFactory)

	h := commands.NewSetDistanceThresholdCommandHandler(factory, owner)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestSetDistanceThresholdCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	owner := mustParty(t, "registry-owner")
	h := commands.NewSetDistanceThresholdCommandHandler(new(MockSettingsUoWFactory), owner)
	err := h.Handle(ctx, commands.SetDistanceThresholdCommand{})
	require.Error(t, err)
}
