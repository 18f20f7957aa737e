package controller

import (
	"math"

	"github.com/markusressel/plant2go/internal/util"
)

const (
	MinAction = 0.0
	MaxAction = 100.0
)

// RangeChecker is implemented by anything that can tell whether its
// current reading violates its bounds, e.g. *sensors.Sensor
type RangeChecker interface {
	IsOutOfRange() bool
}

// Controller computes corrective actions. Implementations must be stateless.
type Controller interface {
	Correct(current float64, target float64, gainP float64, gainI float64) float64
	CheckRange(sensor RangeChecker) bool
}

// CorrectionRequest holds the inputs of a single correction
type CorrectionRequest struct {
	Current float64
	Target  float64
	GainP   float64
	GainI   float64
}

// Evaluate computes the correction for this request
func (r CorrectionRequest) Evaluate() float64 {
	return Correct(r.Current, r.Target, r.GainP, r.GainI)
}

// PiController is the default Controller implementation
type PiController struct{}

func NewPiController() *PiController {
	return &PiController{}
}

func (c *PiController) Correct(current float64, target float64, gainP float64, gainI float64) float64 {
	return Correct(current, target, gainP, gainI)
}

func (c *PiController) CheckRange(sensor RangeChecker) bool {
	return CheckRange(sensor)
}

// Correct calculates a proportional-integral action for the given reading and target,
// limited to [MinAction, MaxAction].
//
// The integral term does not accumulate over time, it is approximated by half of
// the current error. Repeated calls with the same inputs yield the same result.
func Correct(current float64, target float64, gainP float64, gainI float64) float64 {
	err := target - current
	proportionalTerm := gainP * err
	integralTerm := gainI * (err / 2)
	action := proportionalTerm + integralTerm
	if math.IsNaN(action) {
		return MinAction
	}
	return util.Coerce(action, MinAction, MaxAction)
}

// CheckRange returns true if the sensor reading violates its bounds
func CheckRange(sensor RangeChecker) bool {
	return sensor.IsOutOfRange()
}
