// Package request provides the PendingRequest aggregate that correlates an
// issued asynchronous location lookup with the order and action it resolves.
// Issuing a lookup and receiving its response are two independent entry
// points linked only by the request identifier; this package owns that
// correlation record and its terminal Issued -> Fulfilled | Errored
// state machine.
package request
