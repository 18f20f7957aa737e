package statistics

import (
	"github.com/markusressel/plant2go/internal/state"
	"github.com/prometheus/client_golang/prometheus"
)

const actuatorSubsystem = "actuator"

type ActuatorCollector struct {
	store  *state.Store
	level  *prometheus.Desc
	active *prometheus.Desc
}

func NewActuatorCollector(store *state.Store) *ActuatorCollector {
	return &ActuatorCollector{
		store: store,
		level: prometheus.NewDesc(prometheus.BuildFQName(namespace, actuatorSubsystem, "level"),
			"Current output level of the actuator",
			[]string{"id", "kind"}, nil,
		),
		active: prometheus.NewDesc(prometheus.BuildFQName(namespace, actuatorSubsystem, "active"),
			"1 if the actuator is active, 0 otherwise",
			[]string{"id", "kind"}, nil,
		),
	}
}

func (collector *ActuatorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.level
	ch <- collector.active
}

// Collect implements required collect function for all prometheus collectors
func (collector *ActuatorCollector) Collect(ch chan<- prometheus.Metric) {
	for _, actuator := range collector.store.Actuators() {
		ch <- prometheus.MustNewConstMetric(collector.level, prometheus.GaugeValue, actuator.Level, actuator.ID, actuator.Kind)
		ch <- prometheus.MustNewConstMetric(collector.active, prometheus.GaugeValue, boolToFloat(actuator.Active), actuator.ID, actuator.Kind)
	}
}
