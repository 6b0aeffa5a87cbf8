package commands_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetDistanceThresholdCommand_ValidInput(t *testing.T) {
	owner := mustParty(t, "registry-owner")

	cmd, err := commands.NewSetDistanceThresholdCommand(owner, 750)
	require.NoError(t, err)
	assert.Equal(t, owner, cmd.Caller())
	assert.Equal(t, int64(750), cmd.Meters())
	assert.NoError(t, cmd.Validate())
}

func TestNewSetDistanceThresholdCommand_NonPositiveMeters(t *testing.T) {
	owner := mustParty(t, "registry-owner")

	for _, meters := range []int64{0, -1, -400} {
		_, err := commands.NewSetDistanceThresholdCommand(owner, meters)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestNewSetDistanceThresholdCommand_InvalidCaller(t *testing.T) {
	_, err := commands.NewSetDistanceThresholdCommand(kernel.Party{}, 400)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrPartyIsNotConstructed)
}

func TestSetDistanceThresholdCommand_ValidateZeroValue(t *testing.T) {
	cmd := commands.SetDistanceThresholdCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrSetDistanceThresholdCommandIsNotConstructed)
}
