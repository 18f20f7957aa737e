package configuration

type SensorConfig struct {
	ID   string  `json:"id"`
	Kind string  `json:"kind"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`

	Uniform  *UniformSamplerConfig  `json:"uniform,omitempty"`
	Fixed    *FixedSamplerConfig    `json:"fixed,omitempty"`
	Sequence *SequenceSamplerConfig `json:"sequence,omitempty"`
	File     *FileSamplerConfig     `json:"file,omitempty"`
}

type UniformSamplerConfig struct {
	Seed uint64 `json:"seed"`
}

type FixedSamplerConfig struct {
	Value float64 `json:"value"`
}

type SequenceSamplerConfig struct {
	Values []float64 `json:"values"`
}

type FileSamplerConfig struct {
	Path string `json:"path"`
}
