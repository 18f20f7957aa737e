package sensors

import (
	"math/rand/v2"
	"sync"

	"github.com/markusressel/plant2go/internal/util"
)

// Sampler produces a new reading for a sensor with the given bounds.
// Simulated samplers use the bounds as the range to draw from, samplers backed
// by an external source are free to ignore them.
type Sampler interface {
	Sample(min float64, max float64) (float64, error)
}

// SamplerFunc adapts a plain function to the Sampler interface
type SamplerFunc func(min float64, max float64) (float64, error)

func (f SamplerFunc) Sample(min float64, max float64) (float64, error) {
	return f(min, max)
}

// UniformSampler draws values uniformly from [min, max] using a seeded PCG source,
// so two samplers with the same seed produce the same sequence.
type UniformSampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewUniformSampler(seed uint64) *UniformSampler {
	return &UniformSampler{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *UniformSampler) Sample(min float64, max float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rnd.Float64()*(max-min), nil
}

// FixedSampler always returns Value
type FixedSampler struct {
	Value float64
}

func (s FixedSampler) Sample(float64, float64) (float64, error) {
	return s.Value, nil
}

// SequenceSampler replays Values in order and repeats the last one once exhausted
type SequenceSampler struct {
	Values []float64
	next   int
}

func NewSequenceSampler(values ...float64) *SequenceSampler {
	return &SequenceSampler{Values: values}
}

func (s *SequenceSampler) Sample(min float64, _ float64) (float64, error) {
	if len(s.Values) <= 0 {
		return min, nil
	}
	value := s.Values[s.next]
	if s.next < len(s.Values)-1 {
		s.next++
	}
	return value, nil
}

// FileSampler reads the current value from a file containing a single number
type FileSampler struct {
	Path string
}

func (s FileSampler) Sample(float64, float64) (float64, error) {
	return util.ReadFloatFromFile(s.Path)
}
