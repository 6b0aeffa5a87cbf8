package geo

import (
	"math"
	"math/big"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ParsePackedLocation parses the oracle's decimal payload string into a
// packed location word. The oracle transmits the word as an arbitrary-width
// decimal integer, so the parse goes through math/big and then checks that
// the value fits the packed representation. Any coordinate actually packs
// into far fewer than 64 bits; a payload outside that range is malformed.
func ParsePackedLocation(payload string) (kernel.PackedLocation, error) {
	value, ok := new(big.Int).SetString(payload, 10)
	if !ok {
		return 0, errs.NewValueIsInvalidError("location payload")
	}

	if !value.IsInt64() {
		return 0, errs.NewValueIsOutOfRangeError(
			"location payload", payload, int64(math.MinInt64), int64(math.MaxInt64))
	}

	return kernel.PackedLocation(value.Int64()), nil
}
