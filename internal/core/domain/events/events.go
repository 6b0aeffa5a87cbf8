// Package events defines the notifications the system emits on observable
// state changes. Events are published at-least-once, in the order the
// changes occur, after the change has been committed.
package events

import "shiptrack/internal/core/domain/model/kernel"

// Event is implemented by every notification type. Name returns a stable
// identifier used by publishers for routing and logging.
type Event interface {
	Name() string
}

// OrderCreated is emitted when a new shipment order is registered.
type OrderCreated struct {
	OrderID kernel.UUID
}

func (OrderCreated) Name() string { return "OrderCreated" }

// OrderDelivered is emitted when a location check lands within the
// destination geofence and the order transitions to delivered.
type OrderDelivered struct {
	OrderID kernel.UUID
}

func (OrderDelivered) Name() string { return "OrderDelivered" }

// OrderReceiptConfirmed is emitted when the receiver's confirmation is
// applied to a delivered order.
type OrderReceiptConfirmed struct {
	OrderID kernel.UUID
}

func (OrderReceiptConfirmed) Name() string { return "OrderReceiptConfirmed" }

// RequestFulfilled is emitted for every fulfilled location response,
// including responses whose dispatch resulted in no state change.
// RawLocation carries the packed payload exactly as received, for
// observability of the oracle boundary.
type RequestFulfilled struct {
	RequestID   kernel.UUID
	RawLocation kernel.PackedLocation
}

func (RequestFulfilled) Name() string { return "RequestFulfilled" }
