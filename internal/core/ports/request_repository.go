package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/request"
	"time"
)

// RequestRepository defines the persistence contract for pending location
// requests, keyed by their correlation identifier.
type RequestRepository interface {
	// Add persists a newly issued pending request.
	Add(ctx context.Context, aggregate *request.PendingRequest) error

	// Update persists a request's resolution.
	Update(ctx context.Context, aggregate *request.PendingRequest) error

	// Get retrieves a pending request by its correlation identifier.
	// Returns an ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*request.PendingRequest, error)

	// GetAllIssuedBefore retrieves requests still in the Issued state that
	// were created before the given instant. Used for observability of
	// lookups the oracle never answered.
	GetAllIssuedBefore(ctx context.Context, cutoff time.Time) ([]*request.PendingRequest, error)
}
