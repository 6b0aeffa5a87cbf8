package commands

import (
	"context"

	"shiptrack/internal/core/domain/events"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/ports"
)

// CreateOrderCommandHandler registers new shipment orders. The handler
// allocates the order identifier, persists the order in its initial state,
// and emits OrderCreated after commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order registration command and returns the id of the
// newly created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Sender(),
		cmd.Receiver(),
		cmd.Source(),
		cmd.Destination(),
		cmd.ExpectedArrival(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.publisher.Publish(ctx, events.OrderCreated{OrderID: newOrder.ID()})

	return newOrder.ID(), nil
}
