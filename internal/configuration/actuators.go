package configuration

type ActuatorConfig struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}
