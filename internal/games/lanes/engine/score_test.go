package engine

import "testing"

func TestScoreFloor(t *testing.T) {
	s := NewScore(5)

	for i := 0; i < 3; i++ {
		s.Decrement()
	}
	if s.Value() != 0 {
		t.Errorf("repeated Decrement from 0 = %d, expected 0", s.Value())
	}

	s.Increment()
	s.Increment()
	s.Decrement()
	if s.Value() != 5 {
		t.Errorf("Value() = %d, expected 5", s.Value())
	}
}

func TestScoreStaysMultipleOfStep(t *testing.T) {
	s := NewScore(3)
	ops := []bool{true, false, false, true, true, false, true, false, false, false, true}

	for i, inc := range ops {
		if inc {
			s.Increment()
		} else {
			s.Decrement()
		}
		if s.Value() < 0 || s.Value()%s.Step() != 0 {
			t.Fatalf("after op %d score = %d, not a non-negative multiple of %d", i, s.Value(), s.Step())
		}
	}
}

func TestScoreDefaultStep(t *testing.T) {
	if NewScore(0).Step() != 1 {
		t.Error("non-positive step should default to 1")
	}
}
