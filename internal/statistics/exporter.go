package statistics

import (
	"github.com/markusressel/plant2go/internal/state"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "plant2go"
)

// RegisterAll registers the sensor, actuator and supervisor collectors reading from the given store
func RegisterAll(registerer prometheus.Registerer, store *state.Store) {
	registerer.MustRegister(
		NewSensorCollector(store),
		NewActuatorCollector(store),
		NewSupervisorCollector(store),
	)
}

func boolToFloat(value bool) float64 {
	if value {
		return 1
	}
	return 0
}
