package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	// GIVEN
	input := map[string]float64{
		"valve":       1,
		"pump":        2,
		"water_level": 3,
	}

	// WHEN
	result := SortedKeys(input)

	// THEN
	assert.Equal(t, []string{"pump", "valve", "water_level"}, result)
}

func TestSortedKeys_Empty(t *testing.T) {
	assert.Empty(t, SortedKeys(map[int]bool{}))
}
