package services

import (
	"errors"
	"math"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

const (
	// EarthCircumferenceMeters is the meridional circumference used to
	// convert microdegree differences into meters.
	EarthCircumferenceMeters = 40_075_000

	// latitudeAxisRangeMicrodeg spans the full latitude axis (-90..+90 degrees).
	latitudeAxisRangeMicrodeg = 180_000_000

	// longitudeAxisRangeMicrodeg spans the full longitude axis (-180..+180 degrees).
	longitudeAxisRangeMicrodeg = 360_000_000

	// DefaultThresholdMeters is the delivery geofence radius applied until
	// the registry owner configures another value.
	DefaultThresholdMeters int64 = 400
)

// GeofenceEvaluator decides whether a shipment's current position is close
// enough to its destination to count as delivered.
//
// The metric is a flat-projection approximation: each axis difference is
// converted to meters independently via
//
//	meters = |diffMicrodeg| * EarthCircumferenceMeters / axisRange
//
// and the position is within range only if BOTH axis distances are at most
// the threshold. This is not a haversine or even a Euclidean distance; the
// acceptance region is a square, and the longitude conversion ignores the
// cos(latitude) shrink of parallels, so the square stretches away from the
// equator and degenerates near the poles. For city-scale thresholds the
// error stays small, and the check needs nothing beyond integer arithmetic.
type GeofenceEvaluator struct{}

// NewGeofenceEvaluator creates a new GeofenceEvaluator instance.
func NewGeofenceEvaluator() GeofenceEvaluator {
	return GeofenceEvaluator{}
}

// WithinThreshold reports whether current lies within thresholdMeters of
// destination on both axes.
//
// The evaluation is symmetric in its two coordinates and monotonic in the
// threshold: enlarging the threshold never excludes a previously accepted
// position. Both coordinates must be properly constructed and the threshold
// non-negative.
func (g GeofenceEvaluator) WithinThreshold(
	current kernel.Coordinate,
	destination kernel.Coordinate,
	thresholdMeters int64,
) (bool, error) {
	if err := errors.Join(current.Validate(), destination.Validate()); err != nil {
		return false, err
	}

	if thresholdMeters < 0 {
		return false, errs.NewValueIsOutOfRangeError(
			"threshold meters", thresholdMeters, 0, int64(math.MaxInt64))
	}

	latMeters := axisMeters(int64(current.Latitude())-int64(destination.Latitude()), latitudeAxisRangeMicrodeg)
	lonMeters := axisMeters(int64(current.Longitude())-int64(destination.Longitude()), longitudeAxisRangeMicrodeg)

	return latMeters <= thresholdMeters && lonMeters <= thresholdMeters, nil
}

// axisMeters converts a signed microdegree difference on one axis into a
// non-negative distance in meters. The intermediate product stays far below
// the int64 limit: 360e6 * 40_075_000 < 2^63.
func axisMeters(diffMicrodeg, axisRangeMicrodeg int64) int64 {
	if diffMicrodeg < 0 {
		diffMicrodeg = -diffMicrodeg
	}
	return diffMicrodeg * EarthCircumferenceMeters / axisRangeMicrodeg
}
