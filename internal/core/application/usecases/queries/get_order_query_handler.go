package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order's tracking view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError for unknown ids.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	response, err := scanOrderRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}

// scanOrderRow maps one orders row onto a response. Shared by the single-order
// and list handlers, which select the same columns.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		id                uuid.UUID
		sender            string
		receiver          string
		sourceLat         int32
		sourceLon         int32
		destinationLat    int32
		destinationLon    int32
		expectedArrival   time.Time
		delivered         bool
		confirmed         bool
		lastKnownLat      sql.NullInt32
		lastKnownLon      sql.NullInt32
		lastUpdatedAtNull sql.NullTime
	)

	if err := scan(
		&id,
		&sender,
		&receiver,
		&sourceLat,
		&sourceLon,
		&destinationLat,
		&destinationLon,
		&expectedArrival,
		&delivered,
		&confirmed,
		&lastKnownLat,
		&lastKnownLon,
		&lastUpdatedAtNull,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	senderParty, err := kernel.NewParty(sender)
	if err != nil {
		return OrderResponse{}, err
	}

	receiverParty, err := kernel.NewParty(receiver)
	if err != nil {
		return OrderResponse{}, err
	}

	source, err := kernel.NewCoordinate(kernel.Microdegrees(sourceLat), kernel.Microdegrees(sourceLon))
	if err != nil {
		return OrderResponse{}, err
	}

	destination, err := kernel.NewCoordinate(kernel.Microdegrees(destinationLat), kernel.Microdegrees(destinationLon))
	if err != nil {
		return OrderResponse{}, err
	}

	response := OrderResponse{
		ID:              orderID,
		Sender:          senderParty,
		Receiver:        receiverParty,
		Source:          source,
		Destination:     destination,
		ExpectedArrival: expectedArrival,
		Delivered:       delivered,
		Confirmed:       confirmed,
	}

	if lastKnownLat.Valid && lastKnownLon.Valid && lastUpdatedAtNull.Valid {
		lastKnown, locErr := kernel.NewCoordinate(
			kernel.Microdegrees(lastKnownLat.Int32),
			kernel.Microdegrees(lastKnownLon.Int32),
		)
		if locErr != nil {
			return OrderResponse{}, locErr
		}
		at := lastUpdatedAtNull.Time
		response.LastKnownLocation = &lastKnown
		response.LastUpdatedAt = &at
	}

	return response, nil
}
