package configuration

// DefaultPlant returns the sensors, actuators and routes of the reference plant:
// a water tank whose level is held by a pump and a pipe whose pressure is held by a valve
func DefaultPlant() ([]SensorConfig, []ActuatorConfig, []RouteConfig) {
	sensors := []SensorConfig{
		{
			ID:      "water_level",
			Kind:    "WaterLevel",
			Min:     1.0,
			Max:     10.0,
			Uniform: &UniformSamplerConfig{Seed: 1},
		},
		{
			ID:      "pressure",
			Kind:    "Pressure",
			Min:     0.5,
			Max:     5.0,
			Uniform: &UniformSamplerConfig{Seed: 2},
		},
	}
	actuators := []ActuatorConfig{
		{ID: "pump", Kind: "Pump"},
		{ID: "valve", Kind: "Valve"},
	}
	routes := []RouteConfig{
		{Sensor: "WaterLevel", Actuator: "Pump", Target: 5.0, GainP: 1.0, GainI: 0.5},
		{Sensor: "Pressure", Actuator: "Valve", Target: 3.0, GainP: 1.0, GainI: 0.5},
	}
	return sensors, actuators, routes
}

// ApplyDefaultPlant fills in the reference plant if the configuration defines no plant at all
func ApplyDefaultPlant(config *Configuration) bool {
	if len(config.Sensors) > 0 || len(config.Actuators) > 0 || len(config.Routes) > 0 {
		return false
	}
	config.Sensors, config.Actuators, config.Routes = DefaultPlant()
	return true
}
