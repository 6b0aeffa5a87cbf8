package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrProcessLocationResponseCommandIsNotConstructed = errors.New(
	"ProcessLocationResponseCommand must be created via NewProcessLocationResponseCommand " +
		"or NewProcessLocationFailureCommand constructors",
)

// ProcessLocationResponseCommand carries one oracle response back into the
// correlator: either a packed location payload or an oracle-reported
// failure, never both. The request identifier is the only link to the
// lookup that triggered it.
type ProcessLocationResponseCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	rawLocation kernel.PackedLocation
	oracleError string
	failed      bool

	guard guard.ConstructorGuard
}

// NewProcessLocationResponseCommand creates a command for a successful
// oracle response carrying a packed location payload.
func NewProcessLocationResponseCommand(
	requestID kernel.UUID,
	rawLocation kernel.PackedLocation,
) (ProcessLocationResponseCommand, error) {
	cmd := ProcessLocationResponseCommand{
		rawLocation: rawLocation,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestID(requestID); err != nil {
		return ProcessLocationResponseCommand{}, err
	}

	return cmd, nil
}

// NewProcessLocationFailureCommand creates a command for an oracle-reported
// failure. The error description must be non-empty.
func NewProcessLocationFailureCommand(
	requestID kernel.UUID,
	oracleError string,
) (ProcessLocationResponseCommand, error) {
	cmd := ProcessLocationResponseCommand{
		oracleError: oracleError,
		failed:      true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setRequestID(requestID), cmd.requireOracleError()); err != nil {
		return ProcessLocationResponseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c ProcessLocationResponseCommand) Validate() error {
	return c.guard.Validate(ErrProcessLocationResponseCommandIsNotConstructed)
}

// RequestID returns the correlation identifier of the answered lookup.
func (c ProcessLocationResponseCommand) RequestID() kernel.UUID {
	return c.requestID
}

// RawLocation returns the packed payload. Meaningful only when Failed is false.
func (c ProcessLocationResponseCommand) RawLocation() kernel.PackedLocation {
	return c.rawLocation
}

// OracleError returns the oracle's failure description. Meaningful only when
// Failed is true.
func (c ProcessLocationResponseCommand) OracleError() string {
	return c.oracleError
}

// Failed reports whether the oracle answered with an error instead of a payload.
func (c ProcessLocationResponseCommand) Failed() bool {
	return c.failed
}

func (c *ProcessLocationResponseCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *ProcessLocationResponseCommand) requireOracleError() error {
	if c.oracleError == "" {
		return errs.NewValueIsRequiredError("oracle error description")
	}
	return nil
}
