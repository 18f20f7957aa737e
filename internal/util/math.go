package util

import (
	"golang.org/x/exp/constraints"
)

// Coerce returns value limited to the closed interval [min, max]
func Coerce[T constraints.Ordered](value T, min T, max T) T {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}
