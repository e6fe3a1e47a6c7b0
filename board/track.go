package board

import (
	"github.com/domino14/puluc/move"
)

// Landing describes where a piece ends up after moving.
type Landing struct {
	To move.Location
	// Backward is the piece's direction after the move.
	Backward bool
	// Reflected is set if the piece reached the far end during the move.
	Reflected bool
	// Exact is set when a removal lands precisely on the removal position
	// rather than overshooting it.
	Exact bool
}

// advance walks distance steps from pos. Pieces in the base sit at
// RemovalPosition facing forward, so entering a piece is the same walk.
func advance(pos int, backward bool, distance int) Landing {
	l := Landing{Backward: backward}
	if backward {
		pos -= distance
	} else {
		pos += distance
		if pos >= LastTile {
			l.Reflected = true
			l.Backward = true
			pos = 2*LastTile - pos
		}
	}
	if pos < 0 {
		l.To = move.Removed
		l.Exact = pos == RemovalPosition
		return l
	}
	l.To = move.Location(pos)
	return l
}

// Destination computes the landing for the piece at from travelling
// distance. from must be the base or an occupied tile.
func (b *Board) Destination(from move.Location, distance uint8) Landing {
	if from == move.Base {
		return advance(RemovalPosition, false, int(distance))
	}
	s := b.tiles[from].stack
	return advance(int(from), s.MovingBackward, int(distance))
}

// CanLand reports whether a piece of player leaving from may finish on to.
// Leaving the track is always allowed; otherwise the tile must not be
// controlled by player once the mover has left its origin.
func (b *Board) CanLand(player Color, from, to move.Location) bool {
	if !to.IsTile() {
		return true
	}
	occ := b.tiles[to]
	if from == to {
		rest, ok := occ.stack.surface()
		occ = slot{occupied: ok, stack: rest}
	}
	return !occ.occupied || occ.stack.Top != player
}
