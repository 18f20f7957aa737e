package statistics

import (
	"strings"
	"testing"

	"github.com/markusressel/plant2go/internal/actuators"
	"github.com/markusressel/plant2go/internal/sensors"
	"github.com/markusressel/plant2go/internal/state"
	"github.com/markusressel/plant2go/internal/supervisor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createStore() *state.Store {
	store := state.NewStore()
	store.Publish(supervisor.Snapshot{
		Running:    true,
		Cycles:     3,
		Violations: 2,
		Sensors: []sensors.State{
			{ID: "pressure", Kind: sensors.KindPressure, Value: 7.0, Min: 0.5, Max: 5.0, Operational: true, OutOfRange: true},
		},
		Actuators: []actuators.State{
			{ID: "valve", Kind: actuators.KindValve, Level: 0.0, Active: true},
		},
	})
	return store
}

func TestSensorCollector(t *testing.T) {
	// GIVEN
	collector := NewSensorCollector(createStore())
	expected := `
# HELP plant2go_sensor_out_of_range 1 if the current value of the sensor is outside of its range, 0 otherwise
# TYPE plant2go_sensor_out_of_range gauge
plant2go_sensor_out_of_range{id="pressure",kind="Pressure"} 1
# HELP plant2go_sensor_value Current value of the sensor
# TYPE plant2go_sensor_value gauge
plant2go_sensor_value{id="pressure",kind="Pressure"} 7
`

	// WHEN
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected),
		"plant2go_sensor_value", "plant2go_sensor_out_of_range")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 4, testutil.CollectAndCount(collector))
}

func TestActuatorCollector(t *testing.T) {
	// GIVEN
	collector := NewActuatorCollector(createStore())
	expected := `
# HELP plant2go_actuator_active 1 if the actuator is active, 0 otherwise
# TYPE plant2go_actuator_active gauge
plant2go_actuator_active{id="valve",kind="Valve"} 1
# HELP plant2go_actuator_level Current output level of the actuator
# TYPE plant2go_actuator_level gauge
plant2go_actuator_level{id="valve",kind="Valve"} 0
`

	// WHEN
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected))

	// THEN
	assert.NoError(t, err)
}

func TestSupervisorCollector(t *testing.T) {
	// GIVEN
	collector := NewSupervisorCollector(createStore())
	expected := `
# HELP plant2go_supervisor_cycles_total Number of monitoring cycles run by the supervisor
# TYPE plant2go_supervisor_cycles_total counter
plant2go_supervisor_cycles_total 3
# HELP plant2go_supervisor_running 1 if the supervisor is running, 0 otherwise
# TYPE plant2go_supervisor_running gauge
plant2go_supervisor_running 1
# HELP plant2go_supervisor_violations_total Number of out of range readings detected by the supervisor
# TYPE plant2go_supervisor_violations_total counter
plant2go_supervisor_violations_total 2
`

	// WHEN
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected))

	// THEN
	assert.NoError(t, err)
}

func TestRegisterAll(t *testing.T) {
	// GIVEN
	registry := prometheus.NewRegistry()

	// WHEN
	RegisterAll(registry, createStore())

	// THEN
	count, err := testutil.GatherAndCount(registry)
	require.NoError(t, err)
	assert.Equal(t, 9, count)
}
