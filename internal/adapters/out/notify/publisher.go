// Package notify delivers domain event notifications. The log publisher
// writes each event as a structured log record; richer transports can
// replace it behind the same port.
package notify

import (
	"context"
	"log/slog"

	"shiptrack/internal/core/domain/events"
)

// LogEventPublisher implements ports.EventPublisher on slog.
type LogEventPublisher struct {
	logger *slog.Logger
}

// NewLogEventPublisher creates a publisher writing to the given logger.
func NewLogEventPublisher(logger *slog.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

// Publish writes one event. Events arrive after the originating transaction
// has committed, in emission order.
func (p *LogEventPublisher) Publish(ctx context.Context, event events.Event) {
	switch e := event.(type) {
	case events.OrderCreated:
		p.logger.InfoContext(ctx, "event published",
			slog.String("event", e.Name()),
			slog.String("order_id", e.OrderID.String()))
	case events.OrderDelivered:
		p.logger.InfoContext(ctx, "event published",
			slog.String("event", e.Name()),
			slog.String("order_id", e.OrderID.String()))
	case events.OrderReceiptConfirmed:
		p.logger.InfoContext(ctx, "event published",
			slog.String("event", e.Name()),
			slog.String("order_id", e.OrderID.String()))
	case events.RequestFulfilled:
		p.logger.InfoContext(ctx, "event published",
			slog.String("event", e.Name()),
			slog.String("request_id", e.RequestID.String()),
			slog.Int64("raw_location", int64(e.RawLocation)))
	default:
		p.logger.InfoContext(ctx, "event published", slog.String("event", event.Name()))
	}
}
