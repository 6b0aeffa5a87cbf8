package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrRequestReceiptConfirmationCheckCommandIsNotConstructed = errors.New(
	"RequestReceiptConfirmationCheckCommand must be created via NewRequestReceiptConfirmationCheckCommand constructor",
)

// RequestReceiptConfirmationCheckCommand asks the correlator to record the
// shipment's current location and confirm receipt on behalf of the caller
// once the oracle answers. Only the order's receiver may trigger this check.
type RequestReceiptConfirmationCheckCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  kernel.Party

	guard guard.ConstructorGuard
}

// NewRequestReceiptConfirmationCheckCommand creates a receipt-confirmation
// check request for the given order on behalf of the calling party.
func NewRequestReceiptConfirmationCheckCommand(orderID kernel.UUID, caller kernel.Party) (RequestReceiptConfirmationCheckCommand, error) {
	cmd := RequestReceiptConfirmationCheckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setOrderID(orderID), cmd.setCaller(caller)); err != nil {
		return RequestReceiptConfirmationCheckCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReceiptConfirmationCheckCommand) Validate() error {
	return c.guard.Validate(ErrRequestReceiptConfirmationCheckCommandIsNotConstructed)
}

// OrderID returns the order to check.
func (c RequestReceiptConfirmationCheckCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Caller returns the party requesting the check.
func (c RequestReceiptConfirmationCheckCommand) Caller() kernel.Party {
	return c.caller
}

func (c *RequestReceiptConfirmationCheckCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestReceiptConfirmationCheckCommand) setCaller(caller kernel.Party) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}
