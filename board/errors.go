package board

import (
	"errors"
	"fmt"

	"github.com/domino14/puluc/move"
)

var (
	ErrNotOnTurn        = errors.New("player is not on turn")
	ErrGameOver         = errors.New("game is already over")
	ErrBadDistance      = errors.New("distance out of range")
	ErrNoPiece          = errors.New("no movable piece at origin")
	ErrWrongDestination = errors.New("destination does not match the distance")
	ErrBlocked          = errors.New("destination is held by the same color")
	ErrBadPosition      = errors.New("invalid position")
)

// IllegalMoveError is returned when a move or pass is not allowed in the
// current position. The board is never modified when this is returned.
type IllegalMoveError struct {
	Move   move.Move
	Player Color
	Pass   bool
	Reason error
}

func (e *IllegalMoveError) Error() string {
	if e.Pass {
		return fmt.Sprintf("illegal pass by %v: %v", e.Player, e.Reason)
	}
	return fmt.Sprintf("illegal move %v by %v: %v", e.Move.ShortDescription(),
		e.Player, e.Reason)
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Reason
}
