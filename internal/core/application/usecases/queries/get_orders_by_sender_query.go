package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetOrdersBySenderQueryIsNotConstructed = errors.New(
	"GetOrdersBySenderQuery must be created via NewGetOrdersBySenderQuery constructor",
)

// GetOrdersBySenderQuery retrieves every order registered by one sender,
// oldest first.
type GetOrdersBySenderQuery struct {
	sender kernel.Party

	guard guard.ConstructorGuard
}

// NewGetOrdersBySenderQuery creates a query for the given sender's orders.
func NewGetOrdersBySenderQuery(sender kernel.Party) (GetOrdersBySenderQuery, error) {
	if err := sender.Validate(); err != nil {
		return GetOrdersBySenderQuery{}, err
	}

	return GetOrdersBySenderQuery{
		sender: sender,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersBySenderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersBySenderQueryIsNotConstructed)
}

// Sender returns the party whose orders are requested.
func (q GetOrdersBySenderQuery) Sender() kernel.Party {
	return q.sender
}
