package supervisor

import (
	"context"
	"errors"
	"fmt"

	"github.com/markusressel/plant2go/internal/actuators"
	"github.com/markusressel/plant2go/internal/controller"
	"github.com/markusressel/plant2go/internal/events"
	"github.com/markusressel/plant2go/internal/sensors"
	"github.com/markusressel/plant2go/internal/ui"
	"golang.org/x/exp/slices"
)

var (
	ErrAlreadyRunning = errors.New("supervisor is already running")
	ErrNotRunning     = errors.New("supervisor is not running")
)

// Supervisor owns a set of sensors and actuators and runs monitoring cycles over them.
//
// A Supervisor is not safe for concurrent use, all methods must be called from the
// goroutine driving the cycles. Other goroutines should use the snapshots passed
// to the OnCycle hooks instead.
type Supervisor struct {
	sensors    []*sensors.Sensor
	actuators  []*actuators.Actuator
	routing    *RoutingTable
	controller controller.Controller
	log        *events.Log

	running    bool
	cycles     uint64
	violations uint64
	onCycle    []func(Snapshot)
}

type Option func(s *Supervisor)

func WithController(c controller.Controller) Option {
	return func(s *Supervisor) {
		s.controller = c
	}
}

// OnCycle registers a hook which is called with a snapshot after every completed cycle
func OnCycle(hook func(snapshot Snapshot)) Option {
	return func(s *Supervisor) {
		s.onCycle = append(s.onCycle, hook)
	}
}

func NewSupervisor(log *events.Log, routing *RoutingTable, options ...Option) *Supervisor {
	if routing == nil {
		routing = DefaultRoutingTable()
	}
	s := &Supervisor{
		routing:    routing,
		controller: controller.NewPiController(),
		log:        log,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Supervisor) IsRunning() bool {
	return s.running
}

// AddSensor registers a sensor. Multiple sensors of the same kind are allowed,
// routing always uses the first one that was added.
// A sensor whose id is already taken is renamed to "<id>-<n>".
func (s *Supervisor) AddSensor(sensor *sensors.Sensor) {
	sensor.SetId(uniqueId(sensor.GetId(), func(id string) bool {
		return slices.ContainsFunc(s.sensors, func(other *sensors.Sensor) bool {
			return other.GetId() == id
		})
	}))
	s.sensors = append(s.sensors, sensor)
	min, max := sensor.GetBounds()
	s.log.Recordf("Sensor added: %s (%s) with range [%.2f, %.2f]", sensor.GetId(), sensor.GetKind(), min, max)
}

// AddActuator registers an actuator. Multiple actuators of the same kind are allowed,
// routing always uses the first one that was added. Actuators added while the
// supervisor is running are started right away. Ids are made unique the same way as for sensors.
func (s *Supervisor) AddActuator(actuator *actuators.Actuator) {
	actuator.SetId(uniqueId(actuator.GetId(), func(id string) bool {
		return slices.ContainsFunc(s.actuators, func(other *actuators.Actuator) bool {
			return other.GetId() == id
		})
	}))
	s.actuators = append(s.actuators, actuator)
	if s.running {
		actuator.Start()
	}
	s.log.Recordf("Actuator added: %s (%s)", actuator.GetId(), actuator.GetKind())
}

// Start activates all actuators
func (s *Supervisor) Start() error {
	if s.running {
		return ErrAlreadyRunning
	}
	for _, actuator := range s.actuators {
		actuator.Start()
	}
	s.running = true
	s.log.Record("System started")
	return nil
}

// Stop deactivates all actuators, which resets their level
func (s *Supervisor) Stop() error {
	if !s.running {
		return ErrNotRunning
	}
	for _, actuator := range s.actuators {
		actuator.Stop()
	}
	s.running = false
	s.log.Record("System stopped")
	return nil
}

// RunCycle samples every sensor, reports range violations and applies the
// correction of every route whose sensor and actuator are present.
// targets overrides the configured target of a route by sensor kind.
func (s *Supervisor) RunCycle(targets map[string]float64) error {
	if !s.running {
		return ErrNotRunning
	}
	s.cycles++

	for _, sensor := range s.sensors {
		s.sample(sensor)
	}

	for _, route := range s.routing.Routes() {
		s.apply(route, targets)
	}

	snapshot := s.Snapshot()
	for _, hook := range s.onCycle {
		hook(snapshot)
	}
	return nil
}

func (s *Supervisor) sample(sensor *sensors.Sensor) {
	value, err := sensor.Sample()
	if err != nil {
		ui.Warning("Unable to sample sensor %s: %v", sensor.GetId(), err)
		s.log.Recordf("Sensor %s (%s) is not operational: %v", sensor.GetId(), sensor.GetKind(), err)
		return
	}

	if !s.controller.CheckRange(sensor) {
		return
	}

	s.violations++
	min, max := sensor.GetBounds()
	message := fmt.Sprintf("Sensor %s (%s) out of range: %.2f not in [%.2f, %.2f]",
		sensor.GetId(), sensor.GetKind(), value, min, max)
	s.log.RecordKind(events.KindViolation, message)
	s.log.Notify(message)
}

func (s *Supervisor) apply(route Route, targets map[string]float64) {
	sensor := s.findSensor(route.SensorKind)
	actuator := s.findActuator(route.ActuatorKind)
	if sensor == nil || actuator == nil {
		return
	}
	if !sensor.IsOperational() {
		ui.Debug("Skipping route %s -> %s, sensor %s is not operational", route.SensorKind, route.ActuatorKind, sensor.GetId())
		return
	}

	target := route.Target
	if override, ok := targets[route.SensorKind]; ok {
		target = override
	}

	current := sensor.GetValue()
	action := s.controller.Correct(current, target, route.GainP, route.GainI)

	err := actuator.AdjustPower(action)
	if errors.Is(err, actuators.ErrActuatorInactive) {
		s.log.RecordKind(events.KindAction, fmt.Sprintf("Actuator %s (%s) is inactive, level %.2f not applied",
			actuator.GetId(), actuator.GetKind(), action))
		return
	}

	s.log.RecordKind(events.KindAction, fmt.Sprintf("Adjusted %s (%s) to %.2f: %s=%.2f, target=%.2f",
		actuator.GetId(), actuator.GetKind(), actuator.GetLevel(), route.SensorKind, current, target))
}

// uniqueId returns id, or the first "<id>-<n>" with n >= 2 that is not taken
func uniqueId(id string, taken func(id string) bool) string {
	result := id
	for n := 2; taken(result); n++ {
		result = fmt.Sprintf("%s-%d", id, n)
	}
	return result
}

func (s *Supervisor) findSensor(kind string) *sensors.Sensor {
	for _, sensor := range s.sensors {
		if sensor.GetKind() == kind {
			return sensor
		}
	}
	return nil
}

func (s *Supervisor) findActuator(kind string) *actuators.Actuator {
	for _, actuator := range s.actuators {
		if actuator.GetKind() == kind {
			return actuator
		}
	}
	return nil
}

// Entries returns all events recorded so far
func (s *Supervisor) Entries() []events.Record {
	return s.log.Entries()
}

// ExportLog writes the complete event log to the file at path, replacing its content
func (s *Supervisor) ExportLog(ctx context.Context, path string) error {
	return s.log.Export(ctx, events.NewFileSink(path, events.FileModeOverwrite))
}
