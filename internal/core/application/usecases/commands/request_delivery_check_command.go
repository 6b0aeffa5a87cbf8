package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrRequestDeliveryCheckCommandIsNotConstructed = errors.New(
	"RequestDeliveryCheckCommand must be created via NewRequestDeliveryCheckCommand constructor",
)

// RequestDeliveryCheckCommand asks the correlator to verify a shipment's
// current location against its destination geofence. Only the order's sender
// may trigger this check.
type RequestDeliveryCheckCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  kernel.Party

	guard guard.ConstructorGuard
}

// NewRequestDeliveryCheckCommand creates a delivery check request for the
// given order on behalf of the calling party.
func NewRequestDeliveryCheckCommand(orderID kernel.UUID, caller kernel.Party) (RequestDeliveryCheckCommand, error) {
	cmd := RequestDeliveryCheckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setOrderID(orderID), cmd.setCaller(caller)); err != nil {
		return RequestDeliveryCheckCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestDeliveryCheckCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeliveryCheckCommandIsNotConstructed)
}

// OrderID returns the order to check.
func (c RequestDeliveryCheckCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Caller returns the party requesting the check.
func (c RequestDeliveryCheckCommand) Caller() kernel.Party {
	return c.caller
}

func (c *RequestDeliveryCheckCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestDeliveryCheckCommand) setCaller(caller kernel.Party) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}
