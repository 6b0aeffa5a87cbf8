package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByReceiverQueryHandler lists a receiver's orders from the database.
type GetOrdersByReceiverQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByReceiverQueryHandler creates a handler for receiver-side listings.
func NewGetOrdersByReceiverQueryHandler(db *gorm.DB) GetOrdersByReceiverQueryHandler {
	return GetOrdersByReceiverQueryHandler{db: db}
}

// Handle executes the listing. Orders come back in insertion order; a receiver
// with no orders gets an empty slice.
func (h GetOrdersByReceiverQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByReceiverQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return listOrders(ctx, h.db, "receiver", query.Receiver().String())
}
