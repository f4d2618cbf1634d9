package dice

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source supplies random integers for rolls.
type Source interface {
	// IntN returns a uniformly distributed integer in [0, n).
	// n is always positive.
	IntN(n int) int
}

// pcgSource draws from a PCG generator seeded from the wall clock.
type pcgSource struct {
	rng *rand.Rand
}

// NewSource returns the default time-seeded Source.
func NewSource() Source {
	now := uint64(time.Now().UnixNano())
	return &pcgSource{
		rng: rand.New(rand.NewPCG(now, now>>1|1)),
	}
}

func (s *pcgSource) IntN(n int) int {
	return s.rng.IntN(n)
}

// ScriptedSource replays predetermined die values, cycling when exhausted.
// It is used to inject known outcomes, e.g. in tests.
type ScriptedSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

// Scripted returns a Source whose rolls produce the given die values in order.
// Values must lie in [Min, Max]; Scripted panics otherwise.
func Scripted(values ...int) *ScriptedSource {
	if len(values) == 0 {
		panic("dice: Scripted needs at least one value")
	}
	for _, v := range values {
		if !Valid(v) {
			panic("dice: scripted value out of range")
		}
	}
	return &ScriptedSource{values: append([]int(nil), values...)}
}

// IntN returns the next scripted value as a zero-based draw.
func (s *ScriptedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.values[s.next%len(s.values)]
	s.next++
	return (v - 1) % n
}
