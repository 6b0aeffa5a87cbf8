// Package orderrepo persists order aggregates with GORM. It maps between the
// domain aggregate and its relational representation and keeps insertion
// order observable through a monotonic sequence column.
package orderrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for one shipment order. Seq is assigned by the
// database on insert and drives the oldest-first listing guarantees.
type OrderDTO struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Seq             int64         `gorm:"autoIncrement;uniqueIndex"`
	Sender          string        `gorm:"index"`
	Receiver        string        `gorm:"index"`
	Source          CoordinateDTO `gorm:"embedded;embeddedPrefix:source_"`
	Destination     CoordinateDTO `gorm:"embedded;embeddedPrefix:destination_"`
	ExpectedArrival time.Time
	Delivered       bool
	Confirmed       bool

	// Nullable as a group: all three are set together by the first
	// recorded oracle observation.
	LastKnownLatitude  *int32
	LastKnownLongitude *int32
	LastUpdatedAt      *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CoordinateDTO is an embedded latitude/longitude pair in microdegrees.
type CoordinateDTO struct {
	Latitude  kernel.Microdegrees `gorm:"type:integer"`
	Longitude kernel.Microdegrees `gorm:"type:integer"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:       aggregate.ID().Bytes(),
		Sender:   aggregate.Sender().String(),
		Receiver: aggregate.Receiver().String(),
		Source: CoordinateDTO{
			Latitude:  aggregate.SourceLocation().Latitude(),
			Longitude: aggregate.SourceLocation().Longitude(),
		},
		Destination: CoordinateDTO{
			Latitude:  aggregate.DestinationLocation().Latitude(),
			Longitude: aggregate.DestinationLocation().Longitude(),
		},
		ExpectedArrival: aggregate.ExpectedArrival(),
		Delivered:       aggregate.IsDelivered(),
		Confirmed:       aggregate.IsConfirmed(),
	}

	if loc := aggregate.LastKnownLocation(); loc != nil {
		lat := int32(loc.Latitude())
		lon := int32(loc.Longitude())
		dto.LastKnownLatitude = &lat
		dto.LastKnownLongitude = &lon
		dto.LastUpdatedAt = aggregate.LastUpdatedAt()
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sender, err := kernel.NewParty(dto.Sender)
	if err != nil {
		return nil, err
	}

	receiver, err := kernel.NewParty(dto.Receiver)
	if err != nil {
		return nil, err
	}

	source, err := kernel.NewCoordinate(dto.Source.Latitude, dto.Source.Longitude)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewCoordinate(dto.Destination.Latitude, dto.Destination.Longitude)
	if err != nil {
		return nil, err
	}

	var lastKnown *kernel.Coordinate
	if dto.LastKnownLatitude != nil && dto.LastKnownLongitude != nil {
		loc, locErr := kernel.NewCoordinate(
			kernel.Microdegrees(*dto.LastKnownLatitude),
			kernel.Microdegrees(*dto.LastKnownLongitude),
		)
		if locErr != nil {
			return nil, locErr
		}
		lastKnown = &loc
	}

	return order.RestoreOrder(
		id,
		sender,
		receiver,
		source,
		destination,
		dto.ExpectedArrival,
		dto.Delivered,
		dto.Confirmed,
		lastKnown,
		dto.LastUpdatedAt,
	)
}
