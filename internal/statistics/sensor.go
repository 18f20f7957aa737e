package statistics

import (
	"github.com/markusressel/plant2go/internal/state"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemSensor = "sensor"

type SensorCollector struct {
	store      *state.Store
	value      *prometheus.Desc
	min        *prometheus.Desc
	max        *prometheus.Desc
	outOfRange *prometheus.Desc
}

func NewSensorCollector(store *state.Store) *SensorCollector {
	labels := []string{"id", "kind"}
	return &SensorCollector{
		store: store,
		value: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "value"),
			"Current value of the sensor",
			labels, nil,
		),
		min: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "min"),
			"Lower bound of the sensor range",
			labels, nil,
		),
		max: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "max"),
			"Upper bound of the sensor range",
			labels, nil,
		),
		outOfRange: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "out_of_range"),
			"1 if the current value of the sensor is outside of its range, 0 otherwise",
			labels, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.value
	ch <- collector.min
	ch <- collector.max
	ch <- collector.outOfRange
}

// Collect implements required collect function for all prometheus collectors
func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	for _, sensor := range collector.store.Sensors() {
		ch <- prometheus.MustNewConstMetric(collector.value, prometheus.GaugeValue, sensor.Value, sensor.ID, sensor.Kind)
		ch <- prometheus.MustNewConstMetric(collector.min, prometheus.GaugeValue, sensor.Min, sensor.ID, sensor.Kind)
		ch <- prometheus.MustNewConstMetric(collector.max, prometheus.GaugeValue, sensor.Max, sensor.ID, sensor.Kind)
		ch <- prometheus.MustNewConstMetric(collector.outOfRange, prometheus.GaugeValue, boolToFloat(sensor.OutOfRange), sensor.ID, sensor.Kind)
	}
}
