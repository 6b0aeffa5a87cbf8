package ports

import (
	"context"

	"shiptrack/internal/core/domain/events"
)

// EventPublisher delivers notifications about observable state changes.
// Handlers publish after the change has been committed; delivery is
// at-least-once and ordered as emitted. Publish failures are the adapter's
// concern and must not fail the committed operation.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}
