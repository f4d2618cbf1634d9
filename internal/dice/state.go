// Package dice owns the rolled value of a twenty-sided die and the
// uniformity statistics used to check it.
package dice

// Die bounds.
const (
	Sides = 20
	Min   = 1
	Max   = Sides
)

// Valid reports whether v is a face of the die.
func Valid(v int) bool {
	return v >= Min && v <= Max
}

// State holds the current value of one die.
// It is owned by a single screen and is not safe for concurrent use.
type State struct {
	src   Source
	value int

	subs   map[int]func(int)
	nextID int
}

// New creates a die showing 1. A nil src selects NewSource.
func New(src Source) *State {
	if src == nil {
		src = NewSource()
	}
	return &State{
		src:   src,
		value: Min,
		subs:  make(map[int]func(int)),
	}
}

// Value returns the face currently shown.
func (s *State) Value() int {
	return s.value
}

// Roll replaces the value with a uniformly random face and notifies
// subscribers. It returns the new value.
func (s *State) Roll() int {
	s.value = s.src.IntN(Sides) + 1
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fn(s.value)
		}
	}
	return s.value
}

// Subscribe registers fn to be called with every new value, in
// subscription order. The returned cancel func is idempotent.
func (s *State) Subscribe(fn func(int)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		delete(s.subs, id)
	}
}
