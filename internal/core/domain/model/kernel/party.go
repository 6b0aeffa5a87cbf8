package kernel

import (
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// ErrPartyIsNotConstructed is returned when attempting to use an improperly
// initialized Party.
var ErrPartyIsNotConstructed = errs.NewValueIsRequiredError(
	"party must be created via NewParty constructor")

// Party identifies a participant in a shipment: the sender, the receiver, or
// the registry owner. The identity is an opaque, immutable handle (an account
// address in its canonical textual form); the system never interprets its
// contents beyond equality.
type Party struct { //nolint:recvcheck //using for validation
	id    string
	guard guard.ConstructorGuard
}

// NewParty creates a Party from its canonical textual identity.
// Returns a validation error for the empty string.
func NewParty(id string) (Party, error) {
	p := Party{
		guard: guard.NewConstructorGuard(),
	}

	if err := p.setID(id); err != nil {
		return Party{}, err
	}

	return p, nil
}

// Validate checks that the Party was produced by NewParty.
func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}

// String returns the canonical textual identity.
func (p Party) String() string {
	return p.id
}

// IsEqual reports whether two parties share the same identity.
func (p Party) IsEqual(other Party) bool {
	return p.id == other.id
}

func (p *Party) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("party id")
	}

	p.id = id
	return nil
}
