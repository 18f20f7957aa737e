package supervisor

import (
	"fmt"

	"github.com/markusressel/plant2go/internal/actuators"
	"github.com/markusressel/plant2go/internal/sensors"
)

// Route connects a sensor kind to the actuator kind it drives, together with
// the target value and the gains used to compute the correction
type Route struct {
	SensorKind   string  `json:"sensorKind"`
	ActuatorKind string  `json:"actuatorKind"`
	Target       float64 `json:"target"`
	GainP        float64 `json:"gainP"`
	GainI        float64 `json:"gainI"`
}

// RoutingTable is an ordered list of routes with at most one route per sensor kind
type RoutingTable struct {
	routes []Route
}

func NewRoutingTable(routes ...Route) (*RoutingTable, error) {
	table := &RoutingTable{}
	for _, route := range routes {
		if _, exists := table.Lookup(route.SensorKind); exists {
			return nil, fmt.Errorf("duplicate route for sensor kind: %s", route.SensorKind)
		}
		table.routes = append(table.routes, route)
	}
	return table, nil
}

// DefaultRoutingTable drives the pump by the water level and the valve by the pressure
func DefaultRoutingTable() *RoutingTable {
	table, _ := NewRoutingTable(
		Route{
			SensorKind:   sensors.KindWaterLevel,
			ActuatorKind: actuators.KindPump,
			Target:       5.0,
			GainP:        1.0,
			GainI:        0.5,
		},
		Route{
			SensorKind:   sensors.KindPressure,
			ActuatorKind: actuators.KindValve,
			Target:       3.0,
			GainP:        1.0,
			GainI:        0.5,
		},
	)
	return table
}

func (t *RoutingTable) Routes() []Route {
	result := make([]Route, len(t.routes))
	copy(result, t.routes)
	return result
}

// Lookup returns the route for the given sensor kind
func (t *RoutingTable) Lookup(sensorKind string) (Route, bool) {
	for _, route := range t.routes {
		if route.SensorKind == sensorKind {
			return route, true
		}
	}
	return Route{}, false
}
