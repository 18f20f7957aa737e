package state

import (
	"sync/atomic"

	"github.com/markusressel/plant2go/internal/actuators"
	"github.com/markusressel/plant2go/internal/sensors"
	"github.com/markusressel/plant2go/internal/supervisor"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Status holds the supervisor counters of the last published cycle
type Status struct {
	Running    bool   `json:"running"`
	Cycles     uint64 `json:"cycles"`
	Violations uint64 `json:"violations"`
}

// Store holds the most recently published state of the plant.
// It is safe for concurrent use.
type Store struct {
	sensors   cmap.ConcurrentMap[string, sensors.State]
	actuators cmap.ConcurrentMap[string, actuators.State]
	status    atomic.Pointer[Status]
}

func NewStore() *Store {
	s := &Store{
		sensors:   cmap.New[sensors.State](),
		actuators: cmap.New[actuators.State](),
	}
	s.status.Store(&Status{})
	return s
}

// Publish replaces the stored state with the content of the given snapshot.
// It has the signature of a supervisor.OnCycle hook.
func (s *Store) Publish(snapshot supervisor.Snapshot) {
	for _, sensor := range snapshot.Sensors {
		s.sensors.Set(sensor.ID, sensor)
	}
	for _, actuator := range snapshot.Actuators {
		s.actuators.Set(actuator.ID, actuator)
	}
	s.status.Store(&Status{
		Running:    snapshot.Running,
		Cycles:     snapshot.Cycles,
		Violations: snapshot.Violations,
	})
}

func (s *Store) GetSensor(id string) (sensors.State, bool) {
	return s.sensors.Get(id)
}

func (s *Store) GetActuator(id string) (actuators.State, bool) {
	return s.actuators.Get(id)
}

func (s *Store) Sensors() map[string]sensors.State {
	return s.sensors.Items()
}

func (s *Store) Actuators() map[string]actuators.State {
	return s.actuators.Items()
}

func (s *Store) Status() Status {
	return *s.status.Load()
}
