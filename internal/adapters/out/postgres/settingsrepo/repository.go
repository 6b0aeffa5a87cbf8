// Package settingsrepo persists the registry's runtime settings with GORM.
// The settings table holds a single row, seeded at startup.
package settingsrepo

import (
	"context"
	"errors"

	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// settingsRowID is the fixed primary key of the single settings row.
const settingsRowID = 1

// SettingsDTO is the single-row settings table.
type SettingsDTO struct {
	ID                      int `gorm:"primaryKey"`
	DistanceThresholdMeters int64
}

// TableName overrides GORM's default naming to use "settings".
func (SettingsDTO) TableName() string {
	return "settings"
}

// GormSettingsRepository implements ports.SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// GetDistanceThreshold returns the configured geofence threshold in meters.
func (r *GormSettingsRepository) GetDistanceThreshold(ctx context.Context) (int64, error) {
	var dto SettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", settingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.NewObjectNotFoundError("settings", "distance threshold")
		}
		return 0, err
	}

	return dto.DistanceThresholdMeters, nil
}

// SetDistanceThreshold replaces the geofence threshold.
func (r *GormSettingsRepository) SetDistanceThreshold(ctx context.Context, meters int64) error {
	result := r.db.WithContext(ctx).Model(&SettingsDTO{}).
		Where("id = ?", settingsRowID).
		Update("distance_threshold_meters", meters)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("settings", "distance threshold")
	}

	return nil
}

// Seed inserts the settings row with the given threshold if the table is
// empty. Called once at startup.
func (r *GormSettingsRepository) Seed(ctx context.Context, defaultThresholdMeters int64) error {
	dto := SettingsDTO{
		ID:                      settingsRowID,
		DistanceThresholdMeters: defaultThresholdMeters,
	}

	return r.db.WithContext(ctx).
		Where("id = ?", settingsRowID).
		FirstOrCreate(&dto).Error
}
