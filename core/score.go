package core

import "fmt"

// Score holds the two goal counters. Counters start at zero, only grow,
// and are mutated exclusively by the collision resolver's goal branch;
// everything else reads them through the accessors.
type Score struct {
	left, right uint32
}

// Add increments the counter matching side. The mapping is literal:
// a goal classified SideLeft bumps the left counter.
func (s *Score) Add(side Side) {
	if side == SideLeft {
		s.left++
	} else {
		s.right++
	}
}

func (s *Score) Left() uint32  { return s.left }
func (s *Score) Right() uint32 { return s.right }

// Pair returns both counters for the display collaborator
func (s *Score) Pair() (left, right uint32) {
	return s.left, s.right
}

// String renders the score in the display format
func (s *Score) String() string {
	return fmt.Sprintf("%d - %d", s.left, s.right)
}
