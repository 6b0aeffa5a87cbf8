package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/request"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

// RequestReceiptConfirmationCheckCommandHandler issues an asynchronous
// location lookup whose fulfillment confirms receipt on behalf of the
// receiver. Authorization is checked here at issue time and replayed by the
// correlator at response time, since the order's state may have changed
// across the asynchronous gap.
type RequestReceiptConfirmationCheckCommandHandler struct {
	uowFactory UoWFactory
	oracle     ports.LocationOracle
}

// NewRequestReceiptConfirmationCheckCommandHandler creates a handler for
// receiver-side receipt-confirmation checks.
func NewRequestReceiptConfirmationCheckCommandHandler(
	uowFactory UoWFactory,
	oracle ports.LocationOracle,
) RequestReceiptConfirmationCheckCommandHandler {
	return RequestReceiptConfirmationCheckCommandHandler{
		uowFactory: uowFactory,
		oracle:     oracle,
	}
}

// Handle authorizes the caller as the order's receiver, persists the pending
// request, issues the oracle lookup, and returns the correlation id.
func (h RequestReceiptConfirmationCheckCommandHandler) Handle(
	ctx context.Context,
	cmd RequestReceiptConfirmationCheckCommand,
) (kernel.UUID, error) {
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

	if !cmd.Caller().IsEqual(trackedOrder.Receiver()) {
		return kernel.UUID{}, errs.NewNotAuthorizedError(cmd.Caller().String(), "request receipt confirmation check")
	}

	pending, err := request.NewPendingRequest(kernel.NewUUID(), trackedOrder.ID(), request.ConfirmOrderReceipt, cmd.Caller())
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
