package commands

import (
	"errors"
	"math"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrSetDistanceThresholdCommandIsNotConstructed = errors.New(
	"SetDistanceThresholdCommand must be created via NewSetDistanceThresholdCommand constructor",
)

// SetDistanceThresholdCommand changes the registry's delivery geofence
// radius. Administrative: only the registry owner may apply it.
type SetDistanceThresholdCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Party
	meters int64

	guard guard.ConstructorGuard
}

// NewSetDistanceThresholdCommand creates a threshold change request.
// The threshold must be positive.
func NewSetDistanceThresholdCommand(caller kernel.Party, meters int64) (SetDistanceThresholdCommand, error) {
	cmd := SetDistanceThresholdCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setCaller(caller), cmd.setMeters(meters)); err != nil {
		return SetDistanceThresholdCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDistanceThresholdCommand) Validate() error {
	return c.guard.Validate(ErrSetDistanceThresholdCommandIsNotConstructed)
}

// Caller returns the party requesting the change.
func (c SetDistanceThresholdCommand) Caller() kernel.Party {
	return c.caller
}

// Meters returns the new geofence radius.
func (c SetDistanceThresholdCommand) Meters() int64 {
	return c.meters
}

func (c *SetDistanceThresholdCommand) setCaller(caller kernel.Party) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *SetDistanceThresholdCommand) setMeters(meters int64) error {
	if meters <= 0 {
		return errs.NewValueIsOutOfRangeError("threshold meters", meters, 1, int64(math.MaxInt64))
	}
	c.meters = meters
	return nil
}
