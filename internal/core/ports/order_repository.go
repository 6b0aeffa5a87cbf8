package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store keeps orders resolvable by identifier and listable by sender
// and by receiver, in insertion order.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllBySender retrieves the orders registered by the given sender,
	// oldest first. Returns an empty slice when there are none.
	GetAllBySender(ctx context.Context, sender kernel.Party) ([]*order.Order, error)

	// GetAllByReceiver retrieves the orders addressed to the given receiver,
	// oldest first. Returns an empty slice when there are none.
	GetAllByReceiver(ctx context.Context, receiver kernel.Party) ([]*order.Order, error)
}
