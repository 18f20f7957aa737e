package internal

import (
	"errors"
	"fmt"
	"time"

	"github.com/markusressel/plant2go/internal/actuators"
	"github.com/markusressel/plant2go/internal/configuration"
	"github.com/markusressel/plant2go/internal/events"
	"github.com/markusressel/plant2go/internal/sensors"
	"github.com/markusressel/plant2go/internal/state"
	"github.com/markusressel/plant2go/internal/supervisor"
	"github.com/markusressel/plant2go/internal/ui"
	"github.com/markusressel/plant2go/internal/util"
)

const notificationTitle = "plant2go"

// Plant bundles a supervisor with its event log and the store its cycles are published to
type Plant struct {
	Supervisor *supervisor.Supervisor
	Log        *events.Log
	Store      *state.Store
	Targets    map[string]float64
}

// NewPlant creates all sensors, actuators and routes of the given configuration
func NewPlant(config *configuration.Configuration, options ...supervisor.Option) (*Plant, error) {
	log := events.NewLog(events.WithNotifier(createNotifier(config.Notification)))

	routing, err := createRoutingTable(config.EffectiveRoutes())
	if err != nil {
		return nil, err
	}

	store := state.NewStore()
	options = append([]supervisor.Option{supervisor.OnCycle(store.Publish)}, options...)
	s := supervisor.NewSupervisor(log, routing, options...)

	for _, sensorConfig := range config.Sensors {
		sensor, err := NewSensor(sensorConfig)
		if err != nil {
			return nil, err
		}
		s.AddSensor(sensor)
	}

	for _, actuatorConfig := range config.Actuators {
		s.AddActuator(actuators.NewActuator(actuatorConfig.ID, actuatorConfig.Kind))
	}

	store.Publish(s.Snapshot())

	return &Plant{
		Supervisor: s,
		Log:        log,
		Store:      store,
		Targets:    config.TargetMap(),
	}, nil
}

// RunCycle runs a single cycle with the configured target overrides
func (p *Plant) RunCycle() error {
	return p.Supervisor.RunCycle(p.Targets)
}

// NewSensor creates a sensor with the sampler of the given configuration
func NewSensor(config configuration.SensorConfig) (*sensors.Sensor, error) {
	sampler, err := createSampler(config)
	if err != nil {
		return nil, fmt.Errorf("sensor %s: %w", config.ID, err)
	}
	sensor, err := sensors.NewSensor(config.ID, config.Kind, config.Min, config.Max, sampler)
	if err != nil {
		return nil, fmt.Errorf("sensor %s: %w", config.ID, err)
	}
	return sensor, nil
}

func createRoutingTable(configs []configuration.RouteConfig) (*supervisor.RoutingTable, error) {
	var routes []supervisor.Route
	for _, routeConfig := range configs {
		routes = append(routes, supervisor.Route{
			SensorKind:   routeConfig.Sensor,
			ActuatorKind: routeConfig.Actuator,
			Target:       routeConfig.Target,
			GainP:        routeConfig.GainP,
			GainI:        routeConfig.GainI,
		})
	}
	return supervisor.NewRoutingTable(routes...)
}

func createSampler(config configuration.SensorConfig) (sensors.Sampler, error) {
	switch {
	case config.Uniform != nil:
		seed := config.Uniform.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		return sensors.NewUniformSampler(seed), nil
	case config.Fixed != nil:
		return sensors.FixedSampler{Value: config.Fixed.Value}, nil
	case config.Sequence != nil:
		return sensors.NewSequenceSampler(config.Sequence.Values...), nil
	case config.File != nil:
		path, err := util.ExpandPath(config.File.Path)
		if err != nil {
			return nil, err
		}
		return sensors.FileSampler{Path: path}, nil
	default:
		return nil, errors.New("no sampler configured")
	}
}

func createNotifier(config configuration.NotificationConfig) events.Notifier {
	var result events.MultiNotifier
	if config.Console {
		result = append(result, events.ConsoleNotifier{})
	}
	if config.Desktop {
		result = append(result, ui.NewDesktopNotifier(notificationTitle))
	}
	if len(result) <= 0 {
		return events.NopNotifier{}
	}
	return result
}
