package sampler

import "sync"

// Scripted replays a fixed list of values, clamping each into the
// requested range. Once exhausted it returns lo. Intended for tests.
type Scripted struct {
	mu     sync.Mutex
	values []int
	Draws  int
}

var _ Sampler = (*Scripted)(nil)

// NewScripted creates a Scripted sampler that yields values in order.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

func (s *Scripted) Int(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	lo, hi = order(lo, hi)
	s.Draws++
	if len(s.values) == 0 {
		return lo
	}
	v := s.values[0]
	s.values = s.values[1:]
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// Remaining reports how many scripted values have not been consumed.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}
