package fleet

import "math"

// scriptedSource replays fixed draws, falling back to constants once a
// queue is exhausted.
type scriptedSource struct {
	floats        []float64
	ints          []int
	fallbackFloat float64
	fallbackInt   int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return s.fallbackFloat
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return s.fallbackInt % n
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
