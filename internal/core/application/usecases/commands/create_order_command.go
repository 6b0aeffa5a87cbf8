package commands

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new shipment order:
// the parties, the source and destination coordinates, and the expected
// arrival time.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	sender          kernel.Party
	receiver        kernel.Party
	source          kernel.Coordinate
	destination     kernel.Coordinate
	expectedArrival time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a shipment order.
// Both coordinates must be properly constructed (and therefore within
// bounds), both parties valid, and the expected arrival non-zero.
func NewCreateOrderCommand(
	sender kernel.Party,
	receiver kernel.Party,
	source kernel.Coordinate,
	destination kernel.Coordinate,
	expectedArrival time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setReceiver(receiver),
		cmd.setSource(source),
		cmd.setDestination(destination),
		cmd.setExpectedArrival(expectedArrival),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Sender returns the party registering the order.
func (c CreateOrderCommand) Sender() kernel.Party {
	return c.sender
}

// Receiver returns the party that will confirm receipt.
func (c CreateOrderCommand) Receiver() kernel.Party {
	return c.receiver
}

// Source returns the shipment's origin coordinate.
func (c CreateOrderCommand) Source() kernel.Coordinate {
	return c.source
}

// Destination returns the shipment's destination coordinate.
func (c CreateOrderCommand) Destination() kernel.Coordinate {
	return c.destination
}

// ExpectedArrival returns the informational expected arrival time.
func (c CreateOrderCommand) ExpectedArrival() time.Time {
	return c.expectedArrival
}

func (c *CreateOrderCommand) setSender(sender kernel.Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	c.sender = sender
	return nil
}

func (c *CreateOrderCommand) setReceiver(receiver kernel.Party) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	c.receiver = receiver
	return nil
}

func (c *CreateOrderCommand) setSource(source kernel.Coordinate) error {
	if err := source.Validate(); err != nil {
		return err
	}
	c.source = source
	return nil
}

func (c *CreateOrderCommand) setDestination(destination kernel.Coordinate) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setExpectedArrival(expectedArrival time.Time) error {
	if expectedArrival.IsZero() {
		return errs.NewValueIsRequiredError("expected arrival")
	}
	c.expectedArrival = expectedArrival
	return nil
}
