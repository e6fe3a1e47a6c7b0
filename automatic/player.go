package automatic

import (
	"github.com/domino14/puluc/move"
	"github.com/domino14/puluc/roll"
)

// Player picks one of the legal moves for a throw. It is never asked when
// there are none.
type Player interface {
	ChooseMove(moves []move.Move) move.Move
}

// RandomPlayer chooses uniformly among the legal moves.
type RandomPlayer struct {
	src roll.Source
}

// NewRandomPlayer returns a player drawing from its own frand stream. An
// empty seed gives an unseeded stream.
func NewRandomPlayer(seed []byte) *RandomPlayer {
	return &RandomPlayer{src: roll.NewSource(seed)}
}

func (p *RandomPlayer) ChooseMove(moves []move.Move) move.Move {
	return moves[p.src.Uint64n(uint64(len(moves)))]
}
