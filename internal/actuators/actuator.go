package actuators

import (
	"errors"
	"math"

	"github.com/markusressel/plant2go/internal/util"
)

const (
	KindPump  = "Pump"
	KindValve = "Valve"

	MinLevel = 0.0
	MaxLevel = 100.0
)

// ErrActuatorInactive is returned when power is adjusted on a stopped actuator.
// It is a status, the adjustment was simply not applied.
var ErrActuatorInactive = errors.New("actuator inactive")

// Actuator holds a controllable output level in [MinLevel, MaxLevel].
// An inactive actuator always has a level of MinLevel.
type Actuator struct {
	id     string
	kind   string
	level  float64
	active bool
}

type State struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"`
	Level  float64 `json:"level"`
	Active bool    `json:"active"`
}

// NewActuator creates an inactive actuator
func NewActuator(id string, kind string) *Actuator {
	if len(id) <= 0 {
		id = kind
	}
	return &Actuator{
		id:   id,
		kind: kind,
	}
}

func (a *Actuator) GetId() string {
	return a.id
}

func (a *Actuator) SetId(id string) {
	a.id = id
}

func (a *Actuator) GetKind() string {
	return a.kind
}

func (a *Actuator) GetLevel() float64 {
	return a.level
}

func (a *Actuator) IsActive() bool {
	return a.active
}

func (a *Actuator) Start() {
	a.active = true
}

func (a *Actuator) Stop() {
	a.active = false
	a.level = MinLevel
}

// AdjustPower sets the output level to the requested value, limited to [MinLevel, MaxLevel].
// Returns ErrActuatorInactive without changing anything if the actuator is not active.
func (a *Actuator) AdjustPower(requested float64) error {
	if !a.active {
		return ErrActuatorInactive
	}
	if math.IsNaN(requested) {
		requested = MinLevel
	}
	a.level = util.Coerce(requested, MinLevel, MaxLevel)
	return nil
}

func (a *Actuator) State() State {
	return State{
		ID:     a.id,
		Kind:   a.kind,
		Level:  a.level,
		Active: a.active,
	}
}
