// Package movegen generates the legal moves for a Puluc position and
// throw. It never modifies the board; playing a move is up to
// board.Apply.
package movegen

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/domino14/puluc/board"
	"github.com/domino14/puluc/move"
	"github.com/domino14/puluc/roll"
)

var (
	ErrInvalidDistance = errors.New("distance must be between 1 and 5")
	ErrInvalidPlayer   = errors.New("player must be white or black")
)

// MoveGenerator generates moves for a position. Plays returns the moves
// from the last successful GenAll call.
type MoveGenerator interface {
	GenAll(b *board.Board, player board.Color, distance uint8) error
	Plays() []move.Move
}

// Generator is the standard MoveGenerator.
type Generator struct {
	plays []move.Move
}

func NewGenerator() *Generator {
	return &Generator{plays: make([]move.Move, 0, board.TrackLen+1)}
}

// GenAll finds every move player can make with the given distance. Each
// piece player controls is a candidate: one from the base if any are left
// to enter, and the top piece of each tile player holds. Trapped pieces
// never move. Plays come out with the base entry first, then by tile.
// An empty result means player must pass.
func (g *Generator) GenAll(b *board.Board, player board.Color, distance uint8) error {
	g.plays = g.plays[:0]
	if distance < 1 || distance > roll.MaxDistance {
		return fmt.Errorf("%w: %d", ErrInvalidDistance, distance)
	}
	if !player.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}
	g.tryFrom(b, player, move.Base, distance)
	for i := 0; i < board.TrackLen; i++ {
		g.tryFrom(b, player, move.Location(i), distance)
	}
	g.plays = lo.UniqBy(g.plays, func(m move.Move) [2]move.Location {
		return m.Key()
	})
	return nil
}

func (g *Generator) tryFrom(b *board.Board, player board.Color, from move.Location, distance uint8) {
	if !b.Controls(player, from) {
		return
	}
	l := b.Destination(from, distance)
	if !b.CanLand(player, from, l.To) {
		return
	}
	g.plays = append(g.plays, move.New(from, l.To, distance))
}

func (g *Generator) Plays() []move.Move {
	return g.plays
}

// LegalMoves is a convenience wrapper that returns a fresh slice of moves.
func LegalMoves(b *board.Board, player board.Color, distance uint8) ([]move.Move, error) {
	g := NewGenerator()
	if err := g.GenAll(b, player, distance); err != nil {
		return nil, err
	}
	return g.Plays(), nil
}
