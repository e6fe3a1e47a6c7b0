package board

import (
	"fmt"
	"strings"

	"github.com/domino14/puluc/move"
	"github.com/domino14/puluc/roll"
)

// Effects summarizes what a move did.
type Effects struct {
	Entered bool
	// Captured is set if the mover landed on an opposing piece.
	Captured bool
	// Trapped is how many pieces sit beneath the mover after a capture.
	Trapped int
	// Surfaced is set if a trapped piece took over the origin tile.
	Surfaced  bool
	Reflected bool
	Removed   bool
	BonusTurn bool
	GameOver  bool
	// Winner is only meaningful when GameOver is set.
	Winner Color
}

// String lists what happened, separated by semicolons. It is empty for a
// plain move. The winner is only mentioned once the game is over.
func (e Effects) String() string {
	var parts []string
	if e.Reflected {
		parts = append(parts, "turned around")
	}
	if e.Captured {
		parts = append(parts, fmt.Sprintf("captured (%d underneath)", e.Trapped))
	}
	if e.Surfaced {
		parts = append(parts, "freed a trapped piece")
	}
	if e.Removed {
		parts = append(parts, "bore off")
	}
	if e.BonusTurn {
		parts = append(parts, "exact throw, plays again")
	}
	if e.GameOver {
		parts = append(parts, fmt.Sprintf("%v wins", e.Winner))
	}
	return strings.Join(parts, "; ")
}

// check returns where m lands, or the reason it can't be played.
func (b *Board) check(m move.Move, player Color) (Landing, error) {
	if player != b.onTurn {
		return Landing{}, ErrNotOnTurn
	}
	if b.GameOver() {
		return Landing{}, ErrGameOver
	}
	if m.Distance < 1 || m.Distance > roll.MaxDistance {
		return Landing{}, ErrBadDistance
	}
	if !b.Controls(player, m.From) {
		return Landing{}, ErrNoPiece
	}
	l := b.Destination(m.From, m.Distance)
	if l.To != m.To {
		return Landing{}, ErrWrongDestination
	}
	if !b.CanLand(player, m.From, m.To) {
		return Landing{}, ErrBlocked
	}
	return l, nil
}

// Apply plays m for player and returns the resulting board. The receiver
// is never modified; on error the returned board is nil.
func (b *Board) Apply(m move.Move, player Color) (*Board, Effects, error) {
	l, err := b.check(m, player)
	if err != nil {
		return nil, Effects{}, &IllegalMoveError{Move: m, Player: player, Reason: err}
	}
	nb := b.Copy()
	eff := nb.play(m, player, l)
	return nb, eff, nil
}

func (b *Board) play(m move.Move, player Color, l Landing) Effects {
	eff := Effects{Reflected: l.Reflected}

	if m.From == move.Base {
		b.inBase[player]--
		eff.Entered = true
	} else {
		rest, ok := b.tiles[m.From].stack.surface()
		b.tiles[m.From] = slot{occupied: ok, stack: rest}
		eff.Surfaced = ok
	}

	if m.To == move.Removed {
		b.removed[player]++
		eff.Removed = true
		eff.BonusTurn = l.Exact && b.rules.ExactRemovalBonus
	} else {
		dst := &b.tiles[m.To]
		arriving := Stack{Top: player, MovingBackward: l.Backward}
		if dst.occupied {
			arriving = dst.stack.capturedBy(player, l.Backward)
			eff.Captured = true
			eff.Trapped = arriving.TrappedTotal()
		}
		*dst = slot{occupied: true, stack: arriving}
	}

	if w, over := b.Winner(); over {
		eff.GameOver = true
		eff.Winner = w
	}
	if !eff.BonusTurn {
		b.onTurn = player.Opponent()
	}
	return eff
}
