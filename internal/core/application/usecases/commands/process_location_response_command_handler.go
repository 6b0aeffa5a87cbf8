package commands

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/core/domain/events"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/request"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

// ProcessLocationResponseCommandHandler is the correlator's callback entry
// point. It consumes the pending request for the answered lookup, records
// the decoded location on the order, and drives the transition the request
// was issued for: geofence-checked delivery or receiver confirmation.
//
// The handler is synchronous and single-pass: one codec decode, one geofence
// evaluation, at most one lifecycle transition. It never retries; a failed
// check is retried only by issuing a fresh request with a new correlation id.
type ProcessLocationResponseCommandHandler struct {
	uowFactory UoWFactory
	geofence   services.GeofenceEvaluator
	publisher  ports.EventPublisher
	now        func() time.Time
}

// NewProcessLocationResponseCommandHandler creates the correlator callback handler.
func NewProcessLocationResponseCommandHandler(
	uowFactory UoWFactory,
	geofence services.GeofenceEvaluator,
	publisher ports.EventPublisher,
) ProcessLocationResponseCommandHandler {
	return ProcessLocationResponseCommandHandler{
		uowFactory: uowFactory,
		geofence:   geofence,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle resolves one oracle response.
//
// Unknown or already-resolved request identifiers fail with a not-found
// error: a response must consume its pending request exactly once.
// An oracle-reported failure or malformed payload consumes the request and
// leaves the order exactly as it was, surfacing an external failure.
// A state conflict raised while dispatching the action does not undo the
// already-recorded location: the observation and the transition are
// separable facts, and only the transition failed.
func (h ProcessLocationResponseCommandHandler) Handle(ctx context.Context, cmd ProcessLocationResponseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.RequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if pending.Status().IsTerminal() {
		return errs.NewObjectNotFoundErrorWithCause("requestId", cmd.RequestID().String(),
			errors.New("request already resolved as "+pending.Status().String()))
	}

	if cmd.Failed() {
		return h.resolveFailure(ctx, uow, pending,
			errs.NewExternalFailureErrorWithCause("location oracle", errors.New(cmd.OracleError())))
	}

	observed, decodeErr := kernel.UnpackCoordinate(cmd.RawLocation())
	if decodeErr != nil {
		return h.resolveFailure(ctx, uow, pending,
			errs.NewExternalFailureErrorWithCause("location oracle", decodeErr))
	}

	if err = pending.Fulfill(); err != nil {
		return err
	}

	if err = uow.RequestRepository().Update(ctx, pending); err != nil {
		return err
	}

	trackedOrder, err := uow.OrderRepository().Get(ctx, pending.OrderID())
	if err != nil {
		return err
	}

	if err = trackedOrder.RecordLocation(observed, h.now()); err != nil {
		return err
	}

	emitted, dispatchErr := h.dispatch(ctx, uow, pending, trackedOrder, observed)
	if dispatchErr != nil && !isDomainConflict(dispatchErr) {
		return dispatchErr
	}

	// The location write persists even when the dispatch hit a domain
	// conflict; only infrastructure errors abort the transaction.
	if err = uow.OrderRepository().Update(ctx, trackedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, event := range emitted {
		h.publisher.Publish(ctx, event)
	}
	h.publisher.Publish(ctx, events.RequestFulfilled{
		RequestID:   pending.ID(),
		RawLocation: cmd.RawLocation(),
	})

	return dispatchErr
}

// dispatch applies the pending action to the order and returns the events to
// publish after commit. Errors are either domain conflicts (authorization or
// lifecycle state, see isDomainConflict) or infrastructure failures from the
// threshold lookup; the caller aborts the transaction only for the latter.
func (h ProcessLocationResponseCommandHandler) dispatch(
	ctx context.Context,
	uow UoW,
	pending *request.PendingRequest,
	trackedOrder *order.Order,
	observed kernel.Coordinate,
) ([]events.Event, error) {
	switch pending.Action() {
	case request.DeliverOrder:
		threshold, err := uow.SettingsRepository().GetDistanceThreshold(ctx)
		if err != nil {
			return nil, err
		}

		within, err := h.geofence.WithinThreshold(observed, trackedOrder.DestinationLocation(), threshold)
		if err != nil {
			return nil, err
		}

		if !within {
			// Out of range is not an error: the sender may retry later.
			return nil, nil
		}

		if err = trackedOrder.MarkDelivered(); err != nil {
			return nil, err
		}

		return []events.Event{events.OrderDelivered{OrderID: trackedOrder.ID()}}, nil

	case request.ConfirmOrderReceipt:
		// Authorization and ordering are revalidated against the order's
		// current state; it may have changed since the request was issued.
		if err := trackedOrder.ConfirmReceipt(pending.IssuedBy()); err != nil {
			return nil, err
		}

		return []events.Event{events.OrderReceiptConfirmed{OrderID: trackedOrder.ID()}}, nil

	case request.None, request.UnknownAction:
		return nil, nil
	}

	return nil, nil
}

// isDomainConflict reports whether a dispatch error reflects the order's
// state or authorization rules rather than an infrastructure failure.
func isDomainConflict(err error) bool {
	return errors.Is(err, errs.ErrStateConflict) || errors.Is(err, errs.ErrNotAuthorized)
}

// resolveFailure consumes the pending request as errored without touching
// the order, commits, and surfaces the external failure to the caller.
func (h ProcessLocationResponseCommandHandler) resolveFailure(
	ctx context.Context,
	uow UoW,
	pending *request.PendingRequest,
	failure error,
) error {
	if err := pending.MarkErrored(); err != nil {
		return err
	}

	if err := uow.RequestRepository().Update(ctx, pending); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return failure
}
