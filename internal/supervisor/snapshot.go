package supervisor

import (
	"github.com/markusressel/plant2go/internal/actuators"
	"github.com/markusressel/plant2go/internal/sensors"
)

// Snapshot is a consistent copy of the supervisor state at the end of a cycle
type Snapshot struct {
	Running    bool              `json:"running"`
	Cycles     uint64            `json:"cycles"`
	Violations uint64            `json:"violations"`
	Sensors    []sensors.State   `json:"sensors"`
	Actuators  []actuators.State `json:"actuators"`
}

func (s *Supervisor) Snapshot() Snapshot {
	result := Snapshot{
		Running:    s.running,
		Cycles:     s.cycles,
		Violations: s.violations,
		Sensors:    make([]sensors.State, 0, len(s.sensors)),
		Actuators:  make([]actuators.State, 0, len(s.actuators)),
	}
	for _, sensor := range s.sensors {
		result.Sensors = append(result.Sensors, sensor.State())
	}
	for _, actuator := range s.actuators {
		result.Actuators = append(result.Actuators, actuator.State())
	}
	return result
}
