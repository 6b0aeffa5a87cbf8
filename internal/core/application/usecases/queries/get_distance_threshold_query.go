package queries

import (
	"errors"

	"shiptrack/internal/pkg/guard"
)

var ErrGetDistanceThresholdQueryIsNotConstructed = errors.New(
	"GetDistanceThresholdQuery must be created via NewGetDistanceThresholdQuery constructor",
)

// GetDistanceThresholdQuery retrieves the active delivery geofence radius.
type GetDistanceThresholdQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDistanceThresholdQuery creates a parameterless threshold query.
func NewGetDistanceThresholdQuery() GetDistanceThresholdQuery {
	return GetDistanceThresholdQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDistanceThresholdQuery) Validate() error {
	return q.guard.Validate(ErrGetDistanceThresholdQueryIsNotConstructed)
}
