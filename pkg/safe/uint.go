// Package safe provides integer narrowing with range validation.
package safe

import (
	"fmt"
	"math"
)

// Uint32 narrows an unsigned 64-bit value to uint32, rejecting overflow.
func Uint32(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}
