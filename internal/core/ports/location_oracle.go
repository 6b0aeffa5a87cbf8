package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
)

// LocationOracle is the outbound boundary to the external asynchronous
// location data source. RequestLocation only issues the lookup; the answer
// arrives later through the location-response callback, correlated solely by
// the request identifier. The core never blocks waiting for it.
//
// Transport, retries, and authentication live behind this interface and are
// not the core's concern.
type LocationOracle interface {
	// RequestLocation issues a lookup for the order's current location,
	// keyed by the given correlation identifier. An error means the lookup
	// could not be issued; no callback will follow for it.
	RequestLocation(ctx context.Context, requestID kernel.UUID, orderID kernel.UUID) error
}
