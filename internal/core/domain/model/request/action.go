package request

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// Action is the closed set of follow-ups a pending location request can
// carry: what the correlator does with the order once the oracle answers.
// Modeling the action as a tagged enum keeps the dispatch in the correlator
// structurally exhaustive.
type Action int

const (
	// UnknownAction represents an invalid or undefined action.
	// This value (0) helps catch uninitialized Action values.
	UnknownAction Action = iota

	// None records the returned location without driving any transition.
	None

	// DeliverOrder evaluates the geofence against the destination and marks
	// the order delivered on a match.
	DeliverOrder

	// ConfirmOrderReceipt confirms receipt on behalf of the issuing party,
	// revalidated against the order's state at response time.
	ConfirmOrderReceipt
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		UnknownAction:       "Unknown",
		None:                "None",
		DeliverOrder:        "DeliverOrder",
		ConfirmOrderReceipt: "ConfirmOrderReceipt",
	}
}

func getValidActionStrings() map[Action]string {
	//nolint:exhaustive // UnknownAction is intentionally excluded as it's invalid
	return map[Action]string{
		None:                "None",
		DeliverOrder:        "DeliverOrder",
		ConfirmOrderReceipt: "ConfirmOrderReceipt",
	}
}

// Validate checks that the Action is one of the defined values.
// UnknownAction (0) and out-of-set values are invalid.
func (a Action) Validate() error {
	if _, ok := getValidActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// String implements fmt.Stringer; invalid values render as "Unknown".
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "Unknown"
}
