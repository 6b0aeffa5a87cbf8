package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/request"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

// RequestDeliveryCheckCommandHandler issues an asynchronous location lookup
// for a shipment on behalf of its sender. The handler stores the pending
// correlation record and sends the lookup; the verdict arrives later through
// the location-response flow.
type RequestDeliveryCheckCommandHandler struct {
	uowFactory UoWFactory
	oracle     ports.LocationOracle
}

// NewRequestDeliveryCheckCommandHandler creates a handler for sender-side
// delivery checks.
func NewRequestDeliveryCheckCommandHandler(uowFactory UoWFactory, oracle ports.LocationOracle) RequestDeliveryCheckCommandHandler {
	return RequestDeliveryCheckCommandHandler{
		uowFactory: uowFactory,
		oracle:     oracle,
	}
}

// Handle authorizes the caller as the order's sender, persists the pending
// request, issues the oracle lookup, and returns the correlation id.
//
// The lookup is issued inside the transaction window: an oracle refusal
// rolls the pending request back, so no orphaned correlation record can
// outlive a lookup that was never sent.
func (h RequestDeliveryCheckCommandHandler) Handle(ctx context.Context, cmd RequestDeliveryCheckCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if !cmd.Caller().IsEqual(trackedOrder.Sender()) {
		return kernel.UUID{}, errs.NewNotAuthorizedError(cmd.Caller().String(), "request delivery check")
	}

	pending, err := request.NewPendingRequest(kernel.NewUUID(), trackedOrder.ID(), request.DeliverOrder, cmd.Caller())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.RequestRepository().Add(ctx, pending); err != nil {
		return kernel.UUID{}, err
	}

	if err = h.oracle.RequestLocation(ctx, pending.ID(), trackedOrder.ID()); err != nil {
		return kernel.UUID{}, errs.NewExternalFailureErrorWithCause("location oracle", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return pending.ID(), nil
}
