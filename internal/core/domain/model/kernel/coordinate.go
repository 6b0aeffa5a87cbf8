package kernel

import (
	"errors"
	"fmt"
	"math"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// Microdegrees is a geographic angle expressed in millionths of a degree.
// The representation is exact: one unit is 1e-6 degree, roughly 0.11 m of
// latitude at the equator.
type Microdegrees int32

const (
	// MinLatitude is the southernmost valid latitude (-90 degrees).
	MinLatitude Microdegrees = -90_000_000
	// MaxLatitude is the northernmost valid latitude (+90 degrees).
	MaxLatitude Microdegrees = 90_000_000
	// MinLongitude is the westernmost valid longitude (-180 degrees).
	MinLongitude Microdegrees = -180_000_000
	// MaxLongitude is the easternmost valid longitude (+180 degrees).
	MaxLongitude Microdegrees = 180_000_000

	microdegreesPerDegree = 1_000_000
)

// ErrCoordinateIsNotConstructed is returned when attempting to use an improperly
// initialized Coordinate. Coordinates must be created via NewCoordinate or
// CoordinateFromDegrees to guarantee their bounds.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate or CoordinateFromDegrees constructors")

// Coordinate is an immutable geographic position with validated bounds.
// Latitude lies in [MinLatitude..MaxLatitude] and longitude in
// [MinLongitude..MaxLongitude]; violating values are rejected at construction.
// The zero value is invalid and fails validation.
//
// Example:
//
//	c, err := kernel.NewCoordinate(-23_466_800, -46_915_960)
//	if err != nil {
//	    // handle out-of-range coordinate
//	}
//	fmt.Println(c) // Coordinate(-23466800,-46915960)
type Coordinate struct { //nolint:recvcheck //using for validation
	latitude  Microdegrees
	longitude Microdegrees
	guard     guard.ConstructorGuard
}

// NewCoordinate creates a Coordinate from microdegree components.
// Returns a validation error if either component is outside its axis bounds.
func NewCoordinate(latitude, longitude Microdegrees) (Coordinate, error) {
	c := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLatitude(latitude), c.setLongitude(longitude)); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// CoordinateFromDegrees creates a Coordinate from fractional degrees,
// rounding to the nearest microdegree. Convenient for callers working with
// decimal GPS readings.
func CoordinateFromDegrees(latitude, longitude float64) (Coordinate, error) {
	return NewCoordinate(
		Microdegrees(math.Round(latitude*microdegreesPerDegree)),
		Microdegrees(math.Round(longitude*microdegreesPerDegree)),
	)
}

// Validate checks that the Coordinate was produced by a constructor.
// The zero value fails with ErrCoordinateIsNotConstructed.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Latitude returns the latitude component in microdegrees.
func (c Coordinate) Latitude() Microdegrees {
	return c.latitude
}

// Longitude returns the longitude component in microdegrees.
func (c Coordinate) Longitude() Microdegrees {
	return c.longitude
}

// String implements fmt.Stringer as "Coordinate(lat,lon)" in microdegrees.
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%d,%d)", c.latitude, c.longitude)
}

// IsEqual compares two coordinates component-wise. Both must be properly
// constructed for the comparison to succeed.
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c == other, nil
}

// setLatitude sets the latitude with bounds validation.
func (c *Coordinate) setLatitude(latitude Microdegrees) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	c.latitude = latitude
	return nil
}

// setLongitude sets the longitude with bounds validation.
func (c *Coordinate) setLongitude(longitude Microdegrees) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	c.longitude = longitude
	return nil
}
