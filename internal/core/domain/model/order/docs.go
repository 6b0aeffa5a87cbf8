// Package order provides the Order aggregate root for the shipment tracking
// system. An order binds a sender and a receiver to a shipment with immutable
// source and destination coordinates and carries the monotonic lifecycle
// flags delivered and confirmed.
//
// The aggregate enforces the lifecycle ordering (delivered before confirmed,
// each set exactly once), party-based authorization for receipt confirmation,
// and treats the last known location as an observation that is recorded
// independently of lifecycle transitions.
package order
