package kernel

import "shiptrack/internal/pkg/errs"

// PackedLocation is the single signed integer word that carries a Coordinate
// across the location-oracle boundary. The layout is
//
//	packed = latitude<<32 | (longitude + longitudeBias)
//
// with all arithmetic in microdegrees. The bias shifts the longitude into a
// non-negative 32-bit value so the bitwise OR never collides with the
// sign-extended latitude in the upper word. Decoding uses an arithmetic
// right shift for the latitude (sign-preserving) and low-32-bit truncation
// minus the bias for the longitude, which makes the round trip exact for
// every valid Coordinate.
//
// Oracles may transport the word as a wider integer; parsing and narrowing
// to 64 bits is the transport adapter's concern, not the codec's.
type PackedLocation int64

// longitudeBias equals the full longitude axis range in microdegrees.
const longitudeBias = 360_000_000

// PackCoordinate encodes a Coordinate into its packed transport word.
// Deterministic and total for every properly constructed Coordinate.
func PackCoordinate(c Coordinate) (PackedLocation, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	return PackedLocation(int64(c.Latitude())<<32 | (int64(c.Longitude()) + longitudeBias)), nil
}

// RawLatitude extracts the latitude word without bounds checking.
// The shift is arithmetic, so negative latitudes survive intact.
func (p PackedLocation) RawLatitude() int64 {
	return int64(p) >> 32
}

// RawLongitude extracts the longitude word without bounds checking,
// truncating to the low 32 bits and removing the bias.
func (p PackedLocation) RawLongitude() int64 {
	return int64(uint32(p)) - longitudeBias
}

// UnpackCoordinate decodes a packed word into a validated Coordinate.
// The raw extraction itself cannot fail; the error path exists for
// untrusted sources whose decoded components fall outside coordinate
// bounds, which callers surface as a malformed payload.
func UnpackCoordinate(p PackedLocation) (Coordinate, error) {
	lat := p.RawLatitude()
	if lat < int64(MinLatitude) || lat > int64(MaxLatitude) {
		return Coordinate{}, errs.NewValueIsOutOfRangeError("packed latitude", lat, MinLatitude, MaxLatitude)
	}

	lon := p.RawLongitude()
	if lon < int64(MinLongitude) || lon > int64(MaxLongitude) {
		return Coordinate{}, errs.NewValueIsOutOfRangeError("packed longitude", lon, MinLongitude, MaxLongitude)
	}

	return NewCoordinate(Microdegrees(lat), Microdegrees(lon))
}
