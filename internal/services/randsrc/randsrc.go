// Package randsrc provides RandomSource implementations.
package randsrc

import (
	"math/rand/v2"
	"sync"

	domsvc "FinDash/internal/domain/service"
)

// Global draws from the goroutine-safe math/rand/v2 top-level generator.
type Global struct{}

func (Global) Float64() float64 { return rand.Float64() }

// Seeded returns a reproducible source guarded by a mutex.
func Seeded(seed uint64) domsvc.RandomSource {
	return &locked{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Sequence replays fixed values in order, wrapping around at the end.
// An empty Sequence always yields 0.5.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0.5
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

var (
	_ domsvc.RandomSource = Global{}
	_ domsvc.RandomSource = (*Sequence)(nil)
)
