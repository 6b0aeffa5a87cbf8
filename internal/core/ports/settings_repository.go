package ports

import "context"

// SettingsRepository stores the registry's runtime configuration.
// The store holds a single row seeded at startup.
type SettingsRepository interface {
	// GetDistanceThreshold returns the configured geofence threshold in meters.
	GetDistanceThreshold(ctx context.Context) (int64, error)

	// SetDistanceThreshold replaces the geofence threshold.
	SetDistanceThreshold(ctx context.Context, meters int64) error
}
