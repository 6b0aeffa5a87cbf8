package request

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// Status is the lifecycle state of a pending location request.
//
// State transitions:
//
//	Issued ──> Fulfilled
//	   │
//	   └─────> Errored
//
// Both Fulfilled and Errored are terminal; a resolved request is never
// re-dispatched and a second resolution attempt is a state conflict.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Issued means the outbound lookup has been sent and no response has
	// arrived yet. A request with no response stays Issued forever.
	Issued

	// Fulfilled means the response arrived and was dispatched.
	Fulfilled

	// Errored means the oracle reported a failure for this request.
	Errored
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Issued:        "Issued",
		Fulfilled:     "Fulfilled",
		Errored:       "Errored",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Issued:    "Issued",
		Fulfilled: "Fulfilled",
		Errored:   "Errored",
	}
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Fulfilled || s == Errored
}
