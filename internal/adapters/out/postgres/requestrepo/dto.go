// Package requestrepo persists pending location requests with GORM, keyed by
// their correlation identifier.
package requestrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO is the database row for one pending location request.
// CreatedAt is assigned on insert and backs the stale-request scan; the
// domain aggregate does not carry it.
type RequestDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Action    int
	IssuedBy  string
	Status    int       `gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides GORM's default naming to use "pending_requests".
func (RequestDTO) TableName() string {
	return "pending_requests"
}

func fromDomain(aggregate *request.PendingRequest) RequestDTO {
	return RequestDTO{
		ID:       aggregate.ID().Bytes(),
		OrderID:  aggregate.OrderID().Bytes(),
		Action:   int(aggregate.Action()),
		IssuedBy: aggregate.IssuedBy().String(),
		Status:   int(aggregate.Status()),
	}
}

func toDomain(dto RequestDTO) (*request.PendingRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	issuedBy, err := kernel.NewParty(dto.IssuedBy)
	if err != nil {
		return nil, err
	}

	return request.RestorePendingRequest(id, orderID, request.Action(dto.Action), issuedBy, request.Status(dto.Status))
}
