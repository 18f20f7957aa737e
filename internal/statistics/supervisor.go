package statistics

import (
	"github.com/markusressel/plant2go/internal/state"
	"github.com/prometheus/client_golang/prometheus"
)

const supervisorSubsystem = "supervisor"

type SupervisorCollector struct {
	store *state.Store

	cycles     *prometheus.Desc
	violations *prometheus.Desc
	running    *prometheus.Desc
}

func NewSupervisorCollector(store *state.Store) *SupervisorCollector {
	return &SupervisorCollector{
		store: store,
		cycles: prometheus.NewDesc(prometheus.BuildFQName(namespace, supervisorSubsystem, "cycles_total"),
			"Number of monitoring cycles run by the supervisor",
			nil, nil,
		),
		violations: prometheus.NewDesc(prometheus.BuildFQName(namespace, supervisorSubsystem, "violations_total"),
			"Number of out of range readings detected by the supervisor",
			nil, nil,
		),
		running: prometheus.NewDesc(prometheus.BuildFQName(namespace, supervisorSubsystem, "running"),
			"1 if the supervisor is running, 0 otherwise",
			nil, nil,
		),
	}
}

func (collector *SupervisorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.cycles
	ch <- collector.violations
	ch <- collector.running
}

// Collect implements required collect function for all prometheus collectors
func (collector *SupervisorCollector) Collect(ch chan<- prometheus.Metric) {
	status := collector.store.Status()
	ch <- prometheus.MustNewConstMetric(collector.cycles, prometheus.CounterValue, float64(status.Cycles))
	ch <- prometheus.MustNewConstMetric(collector.violations, prometheus.CounterValue, float64(status.Violations))
	ch <- prometheus.MustNewConstMetric(collector.running, prometheus.GaugeValue, boolToFloat(status.Running))
}
