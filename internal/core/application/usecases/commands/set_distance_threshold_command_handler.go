package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// SetDistanceThresholdCommandHandler applies geofence radius changes. The
// registry owner is fixed at construction time from configuration; every
// other caller is rejected.
type SetDistanceThresholdCommandHandler struct {
	uowFactory SettingsUoWFactory
	owner      kernel.Party
}

// NewSetDistanceThresholdCommandHandler creates a handler bound to the
// configured registry owner.
func NewSetDistanceThresholdCommandHandler(
	uowFactory SettingsUoWFactory,
	owner kernel.Party,
) SetDistanceThresholdCommandHandler {
	return SetDistanceThresholdCommandHandler{
		uowFactory: uowFactory,
		owner:      owner,
	}
}

// Handle authorizes the caller as the registry owner and persists the new
// threshold.
func (h SetDistanceThresholdCommandHandler) Handle(ctx context.Context, cmd SetDistanceThresholdCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().IsEqual(h.owner) {
		return errs.NewNotAuthorizedError(cmd.Caller().String(), "set distance threshold")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SettingsRepository().SetDistanceThreshold(ctx, cmd.Meters()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
