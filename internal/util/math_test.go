package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	// GIVEN
	expectedInputOutput := map[float64]float64{
		-50.0: 0.0,
		0.0:   0.0,
		2.5:   2.5,
		100.0: 100.0,
		250.0: 100.0,
	}

	for input, output := range expectedInputOutput {
		// WHEN
		result := Coerce(input, 0, 100)

		// THEN
		assert.Equal(t, output, result)
	}
}

func TestCoerce_Infinity(t *testing.T) {
	assert.Equal(t, 100.0, Coerce(math.Inf(1), 0, 100))
	assert.Equal(t, 0.0, Coerce(math.Inf(-1), 0, 100))
}

func TestCoerce_Int(t *testing.T) {
	assert.Equal(t, 5, Coerce(7, 0, 5))
}
