package request

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrPendingRequestIsNotConstructed is returned when a PendingRequest was not
// created through NewPendingRequest or RestorePendingRequest.
var ErrPendingRequestIsNotConstructed = errors.New(
	"PendingRequest must be created via NewPendingRequest constructor")

// PendingRequest correlates one in-flight oracle lookup with the order and
// action that triggered it. Every request carries its own unique id, so
// several requests for the same order stay independent and the response for
// one can never be attributed to another.
//
// The issuing party is recorded so that authorization can be replayed when
// the response arrives, after the asynchronous gap.
type PendingRequest struct {
	// id is the correlation key, unique per issued lookup, never reused
	id kernel.UUID

	// orderID is the order the lookup was issued for
	orderID kernel.UUID

	// action is what to do with the order once the response arrives
	action Action

	// issuedBy is the party whose authorization triggered the request
	issuedBy kernel.Party

	// status tracks Issued -> Fulfilled | Errored
	status Status

	// isConstructed ensures the request was created via a constructor
	isConstructed bool
}

// NewPendingRequest creates a pending request in the Issued state.
func NewPendingRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	action Action,
	issuedBy kernel.Party,
) (*PendingRequest, error) {
	r := &PendingRequest{
		status:        Issued,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setAction(action),
		r.setIssuedBy(issuedBy),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestorePendingRequest rehydrates a pending request from persistence,
// including its resolution status.
func RestorePendingRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	action Action,
	issuedBy kernel.Party,
	status Status,
) (*PendingRequest, error) {
	r, err := NewPendingRequest(id, orderID, action, issuedBy)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	return r, nil
}

// Validate ensures the PendingRequest was produced by a constructor.
func (r *PendingRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrPendingRequestIsNotConstructed
	}

	return nil
}

// ID returns the correlation identifier of the request.
func (r *PendingRequest) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order the request targets.
func (r *PendingRequest) OrderID() kernel.UUID {
	return r.orderID
}

// Action returns the follow-up the request carries.
func (r *PendingRequest) Action() Action {
	return r.action
}

// IssuedBy returns the party that triggered the request.
func (r *PendingRequest) IssuedBy() kernel.Party {
	return r.issuedBy
}

// Status returns the current lifecycle state of the request.
func (r *PendingRequest) Status() Status {
	return r.status
}

// Fulfill consumes the request on response arrival. Only an Issued request
// can be fulfilled; resolving it a second time is a state conflict, which
// guards against double fulfillment and spoofed correlation ids.
func (r *PendingRequest) Fulfill() error {
	if r.status.IsTerminal() {
		return errs.NewStateConflictError("pending request", "already resolved as "+r.status.String())
	}

	r.status = Fulfilled
	return nil
}

// MarkErrored consumes the request after the oracle reported a failure.
// Terminal like Fulfill; the order itself is left untouched by an errored
// request, so reissuing a fresh request is always safe.
func (r *PendingRequest) MarkErrored() error {
	if r.status.IsTerminal() {
		return errs.NewStateConflictError("pending request", "already resolved as "+r.status.String())
	}

	r.status = Errored
	return nil
}

func (r *PendingRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *PendingRequest) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *PendingRequest) setAction(action Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	r.action = action
	return nil
}

func (r *PendingRequest) setIssuedBy(issuedBy kernel.Party) error {
	if err := issuedBy.Validate(); err != nil {
		return err
	}
	r.issuedBy = issuedBy
	return nil
}
