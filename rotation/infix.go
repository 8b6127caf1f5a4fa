package rotation

import (
	"fmt"
	"strconv"
)

const (
	// CurrentInfix marks the active log file. It never parses as an index.
	CurrentInfix = "rCURRENT"

	infixMarker = "r"
	// infixSeparatorMarker separates the rest of the stem from "r" + digits.
	infixSeparatorMarker = "_r"
)

// NumberInfix returns the fixed-width infix of an archive index, e.g. "r00042".
// Indexes above 99999 still round-trip but no longer sort lexically.
func NumberInfix(idx uint32) string {
	return fmt.Sprintf("r%05d", idx)
}

// parseIndex is the inverse of NumberInfix for the text after the marker.
func parseIndex(digits string) (uint32, bool) {
	v, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
