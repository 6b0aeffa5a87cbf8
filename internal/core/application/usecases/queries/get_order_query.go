// Package queries contains the read-side operations of the shipment tracking
// system. Query handlers read straight from the database and return response
// structs; they never load aggregates or mutate state.
package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full tracking view of a single order.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderResponse is the tracking view of one shipment order.
//
// LastKnownLocation and LastUpdatedAt are nil until the first oracle
// response has been recorded for the order.
type OrderResponse struct {
	ID                kernel.UUID
	Sender            kernel.Party
	Receiver          kernel.Party
	Source            kernel.Coordinate
	Destination       kernel.Coordinate
	ExpectedArrival   time.Time
	Delivered         bool
	Confirmed         bool
	LastKnownLocation *kernel.Coordinate
	LastUpdatedAt     *time.Time
}
