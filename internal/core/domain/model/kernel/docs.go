// Package kernel provides core domain primitives for the shipment tracking
// system. It implements the fundamental building blocks used throughout the
// domain model:
//
//   - Coordinate: a validated geographic position in microdegrees
//   - PackedLocation: the single-word transport encoding of a Coordinate
//     used at the location-oracle boundary
//   - Party: an opaque participant identity (sender, receiver, owner)
//   - UUID: a value object for order and request identifiers
//
// All primitives are immutable, enforce their invariants at construction,
// and are safe for concurrent use.
package kernel
