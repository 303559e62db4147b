package engine

// Score is a counter that moves in fixed steps and never drops below zero.
// One instance is shared by every track of a simulation.
type Score struct {
	value int
	step  int
}

// NewScore creates a zero score. Non-positive steps default to 1.
func NewScore(step int) *Score {
	if step <= 0 {
		step = 1
	}
	return &Score{step: step}
}

// Increment adds one step.
func (s *Score) Increment() {
	s.value += s.step
}

// Decrement removes one step, clamping at zero.
func (s *Score) Decrement() {
	s.value -= s.step
	if s.value < 0 {
		s.value = 0
	}
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}

// Step returns the configured step.
func (s *Score) Step() int {
	return s.step
}
