package queries

import (
	"context"
	"database/sql"
	"errors"

	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDistanceThresholdQueryHandler reads the geofence radius from the
// settings table. The row is seeded at startup, so an empty table means a
// broken deployment, not a default.
type GetDistanceThresholdQueryHandler struct {
	db *gorm.DB
}

// NewGetDistanceThresholdQueryHandler creates a handler for threshold reads.
func NewGetDistanceThresholdQueryHandler(db *gorm.DB) GetDistanceThresholdQueryHandler {
	return GetDistanceThresholdQueryHandler{db: db}
}

// Handle executes the read and returns the threshold in meters.
func (h GetDistanceThresholdQueryHandler) Handle(ctx context.Context, query GetDistanceThresholdQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var meters int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT distance_threshold_meters FROM settings WHERE id = 1
	`).Row().Scan(&meters)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errs.NewObjectNotFoundError("settings", "distance threshold")
	}
	if err != nil {
		return 0, err
	}

	return meters, nil
}
