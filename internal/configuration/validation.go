package configuration

import (
	"errors"
	"fmt"

	"github.com/markusressel/plant2go/internal/ui"
	"golang.org/x/exp/slices"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if config.CycleInterval <= 0 {
		return fmt.Errorf("cycleInterval must be positive, got %v", config.CycleInterval)
	}
	if config.FlushInterval <= 0 {
		return fmt.Errorf("flushInterval must be positive, got %v", config.FlushInterval)
	}
	if config.Cycles < 0 {
		return fmt.Errorf("cycles must not be negative, got %d", config.Cycles)
	}
	if len(config.Log.Mode) > 0 && !slices.Contains(supportedLogModes, config.Log.Mode) {
		return fmt.Errorf("unsupported log mode '%s', use one of: %s | %s", config.Log.Mode, LogModeAppend, LogModeOverwrite)
	}

	err := validateSensors(config)
	if err != nil {
		return err
	}
	err = validateActuators(config)
	if err != nil {
		return err
	}
	return validateRoutes(config)
}

func validateSensors(config *Configuration) error {
	var ids []string
	for _, sensorConfig := range config.Sensors {
		if len(sensorConfig.ID) <= 0 {
			return errors.New("sensor: missing id")
		}
		if slices.Contains(ids, sensorConfig.ID) {
			return fmt.Errorf("duplicate sensor id detected: %s", sensorConfig.ID)
		}
		ids = append(ids, sensorConfig.ID)

		if len(sensorConfig.Kind) <= 0 {
			return fmt.Errorf("sensor %s: missing kind", sensorConfig.ID)
		}
		if sensorConfig.Min > sensorConfig.Max {
			return fmt.Errorf("sensor %s: min (%v) must not be greater than max (%v)", sensorConfig.ID, sensorConfig.Min, sensorConfig.Max)
		}

		subConfigs := 0
		if sensorConfig.Uniform != nil {
			subConfigs++
		}
		if sensorConfig.Fixed != nil {
			subConfigs++
		}
		if sensorConfig.Sequence != nil {
			subConfigs++
		}
		if sensorConfig.File != nil {
			subConfigs++
		}
		if subConfigs > 1 {
			return fmt.Errorf("sensor %s: only one sampler type can be used per sensor definition block", sensorConfig.ID)
		}
		if subConfigs <= 0 {
			return fmt.Errorf("sensor %s: sub-configuration for sensor is missing, use one of: uniform | fixed | sequence | file", sensorConfig.ID)
		}

		if sensorConfig.File != nil && len(sensorConfig.File.Path) <= 0 {
			return fmt.Errorf("sensor %s: no file path provided", sensorConfig.ID)
		}
		if sensorConfig.Sequence != nil && len(sensorConfig.Sequence.Values) <= 0 {
			return fmt.Errorf("sensor %s: sequence has no values", sensorConfig.ID)
		}

		if !isSensorKindInUse(sensorConfig.Kind, config.EffectiveRoutes()) {
			ui.Warning("Sensor %s is not used by any route", sensorConfig.ID)
		}
	}

	return nil
}

func validateActuators(config *Configuration) error {
	var ids []string
	for _, actuatorConfig := range config.Actuators {
		if len(actuatorConfig.ID) <= 0 {
			return errors.New("actuator: missing id")
		}
		if slices.Contains(ids, actuatorConfig.ID) {
			return fmt.Errorf("duplicate actuator id detected: %s", actuatorConfig.ID)
		}
		ids = append(ids, actuatorConfig.ID)

		if len(actuatorConfig.Kind) <= 0 {
			return fmt.Errorf("actuator %s: missing kind", actuatorConfig.ID)
		}
	}

	return nil
}

func validateRoutes(config *Configuration) error {
	var sensorKinds []string
	for _, routeConfig := range config.Routes {
		if len(routeConfig.Sensor) <= 0 {
			return errors.New("route: missing sensor kind")
		}
		if len(routeConfig.Actuator) <= 0 {
			return fmt.Errorf("route %s: missing actuator kind", routeConfig.Sensor)
		}
		if slices.Contains(sensorKinds, routeConfig.Sensor) {
			return fmt.Errorf("duplicate route for sensor kind detected: %s", routeConfig.Sensor)
		}
		sensorKinds = append(sensorKinds, routeConfig.Sensor)

		if routeConfig.GainP == 0 && routeConfig.GainI == 0 {
			return fmt.Errorf("route %s: all gains are zero", routeConfig.Sensor)
		}

		// routes without a matching sensor or actuator are skipped at runtime
		if !sensorKindExists(routeConfig.Sensor, config) {
			ui.Warning("Route %s -> %s: no sensor of kind '%s' configured", routeConfig.Sensor, routeConfig.Actuator, routeConfig.Sensor)
		}
		if !actuatorKindExists(routeConfig.Actuator, config) {
			ui.Warning("Route %s -> %s: no actuator of kind '%s' configured", routeConfig.Sensor, routeConfig.Actuator, routeConfig.Actuator)
		}
	}

	return nil
}

func isSensorKindInUse(kind string, routes []RouteConfig) bool {
	return slices.ContainsFunc(routes, func(route RouteConfig) bool {
		return route.Sensor == kind
	})
}

func sensorKindExists(kind string, config *Configuration) bool {
	return slices.ContainsFunc(config.Sensors, func(sensor SensorConfig) bool {
		return sensor.Kind == kind
	})
}

func actuatorKindExists(kind string, config *Configuration) bool {
	return slices.ContainsFunc(config.Actuators, func(actuator ActuatorConfig) bool {
		return actuator.Kind == kind
	})
}
