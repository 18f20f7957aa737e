package sensors

import (
	"errors"
	"fmt"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/plant2go/internal/util"
)

const (
	KindWaterLevel = "WaterLevel"
	KindPressure   = "Pressure"

	DefaultWindowSize = 10
)

var ErrInvalidBounds = errors.New("invalid bounds")

// Sensor holds a bounded measurable quantity. Its value only changes when sampled.
type Sensor struct {
	id           string
	kind         string
	currentValue float64
	min          float64
	max          float64
	operational  bool

	sampler Sampler
	window  *rolling.PointPolicy
	samples int
}

// State is an immutable copy of the observable state of a Sensor
type State struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Value       float64 `json:"value"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Operational bool    `json:"operational"`
	OutOfRange  bool    `json:"outOfRange"`
	MovingAvg   float64 `json:"movingAvg"`
}

func NewSensor(id string, kind string, min float64, max float64, sampler Sampler) (*Sensor, error) {
	if err := checkBounds(min, max); err != nil {
		return nil, fmt.Errorf("sensor %s: %w", id, err)
	}
	if len(id) <= 0 {
		id = kind
	}
	return &Sensor{
		id:           id,
		kind:         kind,
		currentValue: min,
		min:          min,
		max:          max,
		operational:  true,
		sampler:      sampler,
		window:       util.CreateRollingWindow(DefaultWindowSize),
	}, nil
}

func (s *Sensor) GetId() string {
	return s.id
}

// SetId renames the sensor, ids must be unique within a supervisor
func (s *Sensor) SetId(id string) {
	s.id = id
}

func (s *Sensor) GetKind() string {
	return s.kind
}

// GetValue returns the value of the last sample
func (s *Sensor) GetValue() float64 {
	return s.currentValue
}

func (s *Sensor) GetBounds() (min float64, max float64) {
	return s.min, s.max
}

func (s *Sensor) IsOperational() bool {
	return s.operational
}

// GetMovingAvg returns the average of the most recent samples,
// or the current value if the sensor has not been sampled yet
func (s *Sensor) GetMovingAvg() float64 {
	if s.samples <= 0 {
		return s.currentValue
	}
	return util.GetWindowAvg(s.window, min(s.samples, DefaultWindowSize))
}

// Sample draws a new value from the sampler and stores it as the current value.
// If the sampler fails, the sensor is marked as not operational and keeps its previous value.
func (s *Sensor) Sample() (float64, error) {
	value, err := s.sampler.Sample(s.min, s.max)
	if err != nil {
		s.operational = false
		return s.currentValue, fmt.Errorf("sensor %s: %w", s.id, err)
	}
	s.operational = true
	s.currentValue = value
	s.window.Append(value)
	s.samples++
	return value, nil
}

// IsOutOfRange reports whether the current value lies outside of the current bounds
func (s *Sensor) IsOutOfRange() bool {
	return s.currentValue < s.min || s.currentValue > s.max
}

// Calibrate replaces the bounds of this sensor. The previous bounds are kept if the new ones are invalid.
func (s *Sensor) Calibrate(newMin float64, newMax float64) error {
	if err := checkBounds(newMin, newMax); err != nil {
		return fmt.Errorf("sensor %s: %w", s.id, err)
	}
	s.min = newMin
	s.max = newMax
	return nil
}

func (s *Sensor) State() State {
	return State{
		ID:          s.id,
		Kind:        s.kind,
		Value:       s.currentValue,
		Min:         s.min,
		Max:         s.max,
		Operational: s.operational,
		OutOfRange:  s.IsOutOfRange(),
		MovingAvg:   s.GetMovingAvg(),
	}
}

func checkBounds(min float64, max float64) error {
	if min > max {
		return fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidBounds, min, max)
	}
	return nil
}
