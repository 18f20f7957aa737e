package sensors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSensor(t *testing.T, min float64, max float64, sampler Sampler) *Sensor {
	s, err := NewSensor("sensor", KindWaterLevel, min, max, sampler)
	require.NoError(t, err)
	return s
}

func TestNewSensor_InvalidBounds(t *testing.T) {
	// WHEN
	s, err := NewSensor("sensor", KindPressure, 10, 1, FixedSampler{})

	// THEN
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestNewSensor_IdDefaultsToKind(t *testing.T) {
	// WHEN
	s, err := NewSensor("", KindPressure, 0, 1, FixedSampler{})

	// THEN
	require.NoError(t, err)
	assert.Equal(t, KindPressure, s.GetId())
}

func TestSensor_Sample_StoresValue(t *testing.T) {
	// GIVEN
	s := createSensor(t, 1, 10, FixedSampler{Value: 3.0})

	// WHEN
	value, err := s.Sample()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 3.0, value)
	assert.Equal(t, 3.0, s.GetValue())
	assert.True(t, s.IsOperational())
}

func TestSensor_IsOutOfRange_WithinBounds(t *testing.T) {
	for _, v := range []float64{1, 1.5, 5, 9.999, 10} {
		// GIVEN
		s := createSensor(t, 1, 10, FixedSampler{Value: v})

		// WHEN
		_, err := s.Sample()

		// THEN
		require.NoError(t, err)
		assert.False(t, s.IsOutOfRange(), "value %v", v)
	}
}

func TestSensor_IsOutOfRange_OutsideBounds(t *testing.T) {
	for _, v := range []float64{-5, 0.999, 10.001, 1000} {
		// GIVEN
		s := createSensor(t, 1, 10, FixedSampler{Value: v})

		// WHEN
		_, err := s.Sample()

		// THEN
		require.NoError(t, err)
		assert.True(t, s.IsOutOfRange(), "value %v", v)
	}
}

func TestSensor_IsOutOfRange_UsesCalibratedBounds(t *testing.T) {
	// GIVEN
	s := createSensor(t, 0.5, 5.0, FixedSampler{Value: 7.0})
	_, _ = s.Sample()
	require.True(t, s.IsOutOfRange())

	// WHEN
	err := s.Calibrate(0, 8)

	// THEN
	assert.NoError(t, err)
	assert.False(t, s.IsOutOfRange())
}

func TestSensor_Calibrate_InvalidBoundsKeepsPrevious(t *testing.T) {
	// GIVEN
	s := createSensor(t, 1, 10, FixedSampler{})

	// WHEN
	err := s.Calibrate(10, 1)

	// THEN
	assert.ErrorIs(t, err, ErrInvalidBounds)
	min, max := s.GetBounds()
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 10.0, max)
}

func TestSensor_Calibrate_EqualBounds(t *testing.T) {
	// GIVEN
	s := createSensor(t, 1, 10, FixedSampler{})

	// WHEN
	err := s.Calibrate(4, 4)

	// THEN
	assert.NoError(t, err)
	min, max := s.GetBounds()
	assert.Equal(t, 4.0, min)
	assert.Equal(t, 4.0, max)
}

func TestSensor_Sample_FailureMarksNotOperational(t *testing.T) {
	// GIVEN
	readErr := errors.New("device gone")
	calls := 0
	s := createSensor(t, 1, 10, SamplerFunc(func(min float64, max float64) (float64, error) {
		calls++
		if calls == 2 {
			return 0, readErr
		}
		return 4.0, nil
	}))
	_, err := s.Sample()
	require.NoError(t, err)

	// WHEN
	value, err := s.Sample()

	// THEN
	assert.ErrorIs(t, err, readErr)
	assert.Equal(t, 4.0, value)
	assert.Equal(t, 4.0, s.GetValue())
	assert.False(t, s.IsOperational())

	// WHEN
	_, err = s.Sample()

	// THEN
	assert.NoError(t, err)
	assert.True(t, s.IsOperational())
}

func TestSensor_GetMovingAvg(t *testing.T) {
	// GIVEN
	s := createSensor(t, 0, 10, NewSequenceSampler(2, 4, 6))

	// WHEN
	for i := 0; i < 3; i++ {
		_, err := s.Sample()
		require.NoError(t, err)
	}

	// THEN
	assert.Equal(t, 4.0, s.GetMovingAvg())
}

func TestSensor_GetMovingAvg_SingleSample(t *testing.T) {
	// GIVEN
	s := createSensor(t, 0, 10, FixedSampler{Value: 5.0})

	// WHEN
	_, err := s.Sample()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 5.0, s.GetMovingAvg())
}

func TestSensor_GetMovingAvg_OnlyLastSamples(t *testing.T) {
	// GIVEN
	values := []float64{100, 100}
	for i := 0; i < DefaultWindowSize; i++ {
		values = append(values, 1)
	}
	s := createSensor(t, 0, 100, NewSequenceSampler(values...))

	// WHEN
	for range values {
		_, err := s.Sample()
		require.NoError(t, err)
	}

	// THEN
	assert.Equal(t, 1.0, s.GetMovingAvg())
}

func TestSensor_GetMovingAvg_NoSamples(t *testing.T) {
	// GIVEN
	s := createSensor(t, 2, 10, FixedSampler{})

	// THEN
	assert.Equal(t, 2.0, s.GetMovingAvg())
}

func TestSensor_State(t *testing.T) {
	// GIVEN
	s := createSensor(t, 0.5, 5.0, FixedSampler{Value: 7.0})
	_, _ = s.Sample()

	// WHEN
	state := s.State()

	// THEN
	assert.Equal(t, State{
		ID:          "sensor",
		Kind:        KindWaterLevel,
		Value:       7.0,
		Min:         0.5,
		Max:         5.0,
		Operational: true,
		OutOfRange:  true,
		MovingAvg:   7.0,
	}, state)
}
