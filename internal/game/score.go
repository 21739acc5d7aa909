package game

import "strconv"

// ScoreTracker counts gap passages. It only increments from a reset
// baseline of zero.
type ScoreTracker struct {
	value int
}

// Increment adds one point and returns the new score.
func (s *ScoreTracker) Increment() int {
	s.value++
	return s.value
}

// Reset sets the score back to zero.
func (s *ScoreTracker) Reset() {
	s.value = 0
}

// Value returns the current score.
func (s *ScoreTracker) Value() int {
	return s.value
}

// Text returns the score as displayed.
func (s *ScoreTracker) Text() string {
	return strconv.Itoa(s.value)
}
