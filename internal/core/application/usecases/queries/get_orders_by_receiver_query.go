package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetOrdersByReceiverQueryIsNotConstructed = errors.New(
	"GetOrdersByReceiverQuery must be created via NewGetOrdersByReceiverQuery constructor",
)

// GetOrdersByReceiverQuery retrieves every order addressed to one receiver,
// oldest first.
type GetOrdersByReceiverQuery struct {
	receiver kernel.Party

	guard guard.ConstructorGuard
}

// NewGetOrdersByReceiverQuery creates a query for the given receiver's orders.
func NewGetOrdersByReceiverQuery(receiver kernel.Party) (GetOrdersByReceiverQuery, error) {
	if err := receiver.Validate(); err != nil {
		return GetOrdersByReceiverQuery{}, err
	}

	return GetOrdersByReceiverQuery{
		receiver: receiver,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByReceiverQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByReceiverQueryIsNotConstructed)
}

// Receiver returns the party whose orders are requested.
func (q GetOrdersByReceiverQuery) Receiver() kernel.Party {
	return q.receiver
}
