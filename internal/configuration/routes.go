package configuration

// RouteConfig connects the first sensor of kind Sensor to the first actuator of kind Actuator
type RouteConfig struct {
	Sensor   string  `json:"sensor"`
	Actuator string  `json:"actuator"`
	Target   float64 `json:"target"`
	GainP    float64 `json:"gainP"`
	GainI    float64 `json:"gainI"`
}

// TargetConfig overrides the target of the route for the given sensor kind
type TargetConfig struct {
	Sensor string  `json:"sensor"`
	Value  float64 `json:"value"`
}

// EffectiveRoutes returns the configured routes, or the reference plant routes if none are configured
func (c *Configuration) EffectiveRoutes() []RouteConfig {
	if len(c.Routes) > 0 {
		return c.Routes
	}
	_, _, routes := DefaultPlant()
	return routes
}

// TargetMap returns the configured target overrides by sensor kind
func (c *Configuration) TargetMap() map[string]float64 {
	result := map[string]float64{}
	for _, target := range c.Targets {
		result[target.Sensor] = target.Value
	}
	return result
}
