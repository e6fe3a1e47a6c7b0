package board

import (
	"fmt"
	"strings"
)

func poolRow(c Color, count int) string {
	return strings.Repeat(string(c.Letter()), count) +
		strings.Repeat("_", PiecesPerColor-count)
}

// ToDisplayText draws the board top to bottom: Black's base, the track,
// then White's base. Arrows show which way each piece is heading on screen;
// White travels up the track and Black travels down it.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "   %s  off: %d\n", poolRow(Black, b.BaseCount(Black)), b.RemovedCount(Black))
	for i := 0; i < TrackLen; i++ {
		fmt.Fprintf(&sb, "%2d ", i)
		s, ok := b.TileAt(i)
		if !ok {
			sb.WriteString("_\n")
			continue
		}
		up := s.Top == White
		if s.MovingBackward {
			up = !up
		}
		if up {
			sb.WriteByte('^')
		} else {
			sb.WriteByte('v')
		}
		sb.WriteByte(s.Top.Letter())
		if s.TrappedTotal() > 0 {
			fmt.Fprintf(&sb, "(under: %dw, %db)", s.Trapped[White], s.Trapped[Black])
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "   %s  off: %d\n", poolRow(White, b.BaseCount(White)), b.RemovedCount(White))
	fmt.Fprintf(&sb, "%v to move\n", b.CurrentPlayer())
	return sb.String()
}

// Equals compares positions, ignoring rules.
func (b *Board) Equals(b2 *Board) bool {
	return b.tiles == b2.tiles && b.inBase == b2.inBase &&
		b.removed == b2.removed && b.onTurn == b2.onTurn
}
