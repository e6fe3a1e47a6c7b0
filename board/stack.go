package board

import "fmt"

// A Stack is what sits on an occupied tile: the piece in control plus any
// pieces it has trapped. Trapped pieces stay on the board but can't move
// until they surface.
type Stack struct {
	Top            Color
	MovingBackward bool
	// Trapped is indexed by Color.
	Trapped [NumColors]uint8
}

// Count returns how many pieces of c are in this stack, top included.
func (s Stack) Count(c Color) int {
	n := int(s.Trapped[c])
	if s.Top == c {
		n++
	}
	return n
}

func (s Stack) TrappedTotal() int {
	return int(s.Trapped[White]) + int(s.Trapped[Black])
}

// surface returns what is left on the tile once the top leaves. A trapped
// piece of the departing color comes up first, otherwise one of the other
// color. The surfaced piece keeps the departed piece's direction.
func (s Stack) surface() (Stack, bool) {
	var up Color
	switch {
	case s.Trapped[s.Top] > 0:
		up = s.Top
	case s.Trapped[s.Top.Opponent()] > 0:
		up = s.Top.Opponent()
	default:
		return Stack{}, false
	}
	rest := s
	rest.Top = up
	rest.Trapped[up]--
	return rest, true
}

// capturedBy returns the stack after a piece of color c lands on s. The
// previous top joins the trapped pieces.
func (s Stack) capturedBy(c Color, backward bool) Stack {
	ns := Stack{Top: c, MovingBackward: backward, Trapped: s.Trapped}
	ns.Trapped[s.Top]++
	return ns
}

func (s Stack) String() string {
	return fmt.Sprintf("<%v backward: %v under: %dw, %db>", s.Top, s.MovingBackward,
		s.Trapped[White], s.Trapped[Black])
}
