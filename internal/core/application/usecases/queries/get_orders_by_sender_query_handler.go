package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersBySenderQueryHandler lists a sender's orders from the database.
type GetOrdersBySenderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersBySenderQueryHandler creates a handler for sender-side listings.
func NewGetOrdersBySenderQueryHandler(db *gorm.DB) GetOrdersBySenderQueryHandler {
	return GetOrdersBySenderQueryHandler{db: db}
}

// Handle executes the listing. Orders come back in insertion order; a sender
// with no orders gets an empty slice.
func (h GetOrdersBySenderQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersBySenderQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return listOrders(ctx, h.db, "sender", query.Sender().String())
}

// listOrders runs the shared listing query filtered by one party column.
func listOrders(ctx context.Context, db *gorm.DB, partyColumn, party string) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender,
			receiver,
			source_latitude,
			source_longitude,
			destination_latitude,
			destination_longitude,
			expected_arrival,
			delivered,
			confirmed,
			last_known_latitude,
			last_known_longitude,
			last_updated_at
		FROM orders
		WHERE `+partyColumn+` = ?
		ORDER BY seq
	`, party).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
