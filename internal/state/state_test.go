package state

import (
	"sync"
	"testing"

	"github.com/markusressel/plant2go/internal/actuators"
	"github.com/markusressel/plant2go/internal/sensors"
	"github.com/markusressel/plant2go/internal/supervisor"
	"github.com/stretchr/testify/assert"
)

func createSnapshot(cycles uint64, level float64) supervisor.Snapshot {
	return supervisor.Snapshot{
		Running:    true,
		Cycles:     cycles,
		Violations: 1,
		Sensors: []sensors.State{
			{ID: "water_level", Kind: sensors.KindWaterLevel, Value: 2.0, Min: 1.0, Max: 10.0, Operational: true},
		},
		Actuators: []actuators.State{
			{ID: "pump", Kind: actuators.KindPump, Level: level, Active: true},
		},
	}
}

func TestStore_Empty(t *testing.T) {
	// GIVEN
	s := NewStore()

	// WHEN
	_, found := s.GetSensor("water_level")

	// THEN
	assert.False(t, found)
	assert.Empty(t, s.Sensors())
	assert.Empty(t, s.Actuators())
	assert.Equal(t, Status{}, s.Status())
}

func TestStore_Publish(t *testing.T) {
	// GIVEN
	s := NewStore()

	// WHEN
	s.Publish(createSnapshot(1, 2.5))
	s.Publish(createSnapshot(2, 4.0))

	// THEN
	sensor, found := s.GetSensor("water_level")
	assert.True(t, found)
	assert.Equal(t, 2.0, sensor.Value)

	actuator, found := s.GetActuator("pump")
	assert.True(t, found)
	assert.Equal(t, 4.0, actuator.Level)

	assert.Len(t, s.Sensors(), 1)
	assert.Len(t, s.Actuators(), 1)
	assert.Equal(t, Status{Running: true, Cycles: 2, Violations: 1}, s.Status())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	// GIVEN
	s := NewStore()
	wg := sync.WaitGroup{}

	// WHEN
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(cycle uint64) {
			defer wg.Done()
			s.Publish(createSnapshot(cycle, float64(cycle)))
		}(uint64(i))
		go func() {
			defer wg.Done()
			_ = s.Sensors()
			_ = s.Status()
		}()
	}
	wg.Wait()

	// THEN
	assert.Len(t, s.Actuators(), 1)
}
