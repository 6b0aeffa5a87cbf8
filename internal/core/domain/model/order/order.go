package order

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents one tracked shipment between a sender and a receiver.
// It is the aggregate root owning the shipment lifecycle:
//
//	created ──(location updates)──> delivered ──> confirmed
//
// The delivered and confirmed flags are monotonic one-way transitions:
// delivered is set exactly once on a geofence match, confirmed exactly once
// by the receiver and only after delivery. The last known location is an
// observation separate from the lifecycle and may be written in any state.
//
// Invariants:
//   - Identity, parties, source/destination and expected arrival are immutable
//   - Source and destination coordinates are validated at construction
//   - confirmed implies delivered
//   - Only constructors produce usable instances
type Order struct {
	// id is the unique, never-reused handle for the shipment
	id kernel.UUID

	// sender registered the order and may request delivery checks
	sender kernel.Party

	// receiver may request receipt-confirmation checks
	receiver kernel.Party

	// sourceLocation is where the shipment originates
	sourceLocation kernel.Coordinate

	// destinationLocation is the geofence anchor for delivery verification
	destinationLocation kernel.Coordinate

	// expectedArrival is informational only; nothing is derived from it
	expectedArrival time.Time

	// delivered is set once when a location check lands within the geofence
	delivered bool

	// confirmed is set once by the receiver after delivery
	confirmed bool

	// lastKnownLocation holds the latest fulfilled oracle observation, if any
	lastKnownLocation *kernel.Coordinate

	// lastUpdatedAt records when lastKnownLocation was written
	lastUpdatedAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new shipment order in its initial state: not delivered,
// not confirmed, no location observed yet.
//
// All parameters are validated; coordinate bounds violations surface as
// out-of-range validation errors, missing parties or a zero expected arrival
// as value-required errors.
func NewOrder(
	id kernel.UUID,
	sender kernel.Party,
	receiver kernel.Party,
	source kernel.Coordinate,
	destination kernel.Coordinate,
	expectedArrival time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setSender(sender),
		o.setReceiver(receiver),
		o.setSourceLocation(source),
		o.setDestinationLocation(destination),
		o.setExpectedArrival(expectedArrival),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an order from persistence, including its lifecycle
// flags and last observed location. Rejects flag combinations that are
// unreachable through the domain (confirmed without delivered) and location
// observations missing their timestamp.
func RestoreOrder(
	id kernel.UUID,
	sender kernel.Party,
	receiver kernel.Party,
	source kernel.Coordinate,
	destination kernel.Coordinate,
	expectedArrival time.Time,
	delivered bool,
	confirmed bool,
	lastKnownLocation *kernel.Coordinate,
	lastUpdatedAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, sender, receiver, source, destination, expectedArrival)
	if err != nil {
		return nil, err
	}

	if confirmed && !delivered {
		return nil, errs.NewValueIsInvalidError("confirmed order that was never delivered")
	}

	if (lastKnownLocation == nil) != (lastUpdatedAt == nil) {
		return nil, errs.NewValueIsInvalidError("last known location and its timestamp must be set together")
	}

	if lastKnownLocation != nil {
		if err = lastKnownLocation.Validate(); err != nil {
			return nil, err
		}
		loc := *lastKnownLocation
		at := *lastUpdatedAt
		o.lastKnownLocation = &loc
		o.lastUpdatedAt = &at
	}

	o.delivered = delivered
	o.confirmed = confirmed
	return o, nil
}

// Validate ensures the Order instance was produced by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Sender returns the party that registered the order.
func (o *Order) Sender() kernel.Party {
	return o.sender
}

// Receiver returns the party that confirms receipt.
func (o *Order) Receiver() kernel.Party {
	return o.receiver
}

// SourceLocation returns the shipment's origin coordinate.
func (o *Order) SourceLocation() kernel.Coordinate {
	return o.sourceLocation
}

// DestinationLocation returns the shipment's destination coordinate.
func (o *Order) DestinationLocation() kernel.Coordinate {
	return o.destinationLocation
}

// ExpectedArrival returns the informational expected arrival time.
func (o *Order) ExpectedArrival() time.Time {
	return o.expectedArrival
}

// IsDelivered reports whether the shipment reached its destination geofence.
func (o *Order) IsDelivered() bool {
	return o.delivered
}

// IsConfirmed reports whether the receiver confirmed receipt.
func (o *Order) IsConfirmed() bool {
	return o.confirmed
}

// LastKnownLocation returns a copy of the latest observed coordinate,
// or nil if no oracle response has been recorded yet.
func (o *Order) LastKnownLocation() *kernel.Coordinate {
	if o.lastKnownLocation == nil {
		return nil
	}
	loc := *o.lastKnownLocation
	return &loc
}

// LastUpdatedAt returns when the last known location was recorded,
// or nil if none has been.
func (o *Order) LastUpdatedAt() *time.Time {
	if o.lastUpdatedAt == nil {
		return nil
	}
	at := *o.lastUpdatedAt
	return &at
}

// RecordLocation writes a fulfilled oracle observation into the order.
// Legal in every lifecycle state: the location is a fact about the shipment,
// not a transition.
func (o *Order) RecordLocation(location kernel.Coordinate, at time.Time) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("location timestamp")
	}

	o.lastKnownLocation = &location
	o.lastUpdatedAt = &at
	return nil
}

// MarkDelivered sets the delivered flag. The transition happens exactly once;
// a repeated call is a state conflict. Reached only through the correlator's
// geofence match, never directly by a party.
func (o *Order) MarkDelivered() error {
	if o.delivered {
		return errs.NewStateConflictError("order", "already delivered")
	}

	o.delivered = true
	return nil
}

// ConfirmReceipt sets the confirmed flag on behalf of the given caller.
// Only the receiver may confirm, only after delivery, and only once.
func (o *Order) ConfirmReceipt(caller kernel.Party) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if !caller.IsEqual(o.receiver) {
		return errs.NewNotAuthorizedError(caller.String(), "confirm receipt")
	}

	if !o.delivered {
		return errs.NewStateConflictError("order", "not yet delivered")
	}

	if o.confirmed {
		return errs.NewStateConflictError("order", "already confirmed")
	}

	o.confirmed = true
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSender(sender kernel.Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	o.sender = sender
	return nil
}

func (o *Order) setReceiver(receiver kernel.Party) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	o.receiver = receiver
	return nil
}

func (o *Order) setSourceLocation(source kernel.Coordinate) error {
	if err := source.Validate(); err != nil {
		return err
	}
	o.sourceLocation = source
	return nil
}

func (o *Order) setDestinationLocation(destination kernel.Coordinate) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destinationLocation = destination
	return nil
}

func (o *Order) setExpectedArrival(expectedArrival time.Time) error {
	if expectedArrival.IsZero() {
		return errs.NewValueIsRequiredError("expected arrival")
	}
	o.expectedArrival = expectedArrival
	return nil
}
