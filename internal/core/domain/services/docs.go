// Package services provides stateless domain services for the shipment
// tracking system. The GeofenceEvaluator implements the delivery
// verification metric used by the request correlator: a per-axis
// flat-projection distance check between the shipment's observed location
// and its destination.
package services
